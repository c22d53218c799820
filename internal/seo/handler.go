package seo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/content"
	"consultancy-backend/internal/shared/server/respond"
)

// Handler serves the structured-data endpoints.
type Handler struct {
	Site   Site
	Source content.Source
}

// NewHandler constructs a Handler.
func NewHandler(site Site, source content.Source) *Handler {
	return &Handler{Site: site, Source: source}
}

// RegisterRoutes attaches SEO routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/seo/organization", h.organization)
	rg.GET("/seo/services/:slug", h.service)
}

func (h *Handler) organization(c *gin.Context) {
	respond.JSON(c, http.StatusOK, Organization(h.Site))
}

func (h *Handler) service(c *gin.Context) {
	svc, err := h.Source.ServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "service not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load service")
		return
	}
	respond.JSON(c, http.StatusOK, ServicePage(h.Site, svc))
}
