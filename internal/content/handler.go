package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/shared/server/respond"
)

// Handler serves the content read endpoints.
type Handler struct {
	Source Source
}

// NewHandler constructs a Handler.
func NewHandler(source Source) *Handler {
	return &Handler{Source: source}
}

// RegisterRoutes attaches content routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/services", h.services)
	rg.GET("/content/services/:slug", h.serviceBySlug)
	rg.GET("/content/testimonials", h.testimonials)
}

func (h *Handler) services(c *gin.Context) {
	svcs, err := h.Source.Services(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load services")
		return
	}
	respond.JSON(c, http.StatusOK, svcs)
}

func (h *Handler) serviceBySlug(c *gin.Context) {
	svc, err := h.Source.ServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "service not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load service")
		return
	}
	respond.JSON(c, http.StatusOK, svc)
}

func (h *Handler) testimonials(c *gin.Context) {
	ts, err := h.Source.Testimonials(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load testimonials")
		return
	}
	respond.JSON(c, http.StatusOK, ts)
}
