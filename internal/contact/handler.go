package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/forms"
	"consultancy-backend/internal/shared/server/respond"
)

// Handler wires the contact endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the contact route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	c.Set("form", "contact")

	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request data")
		return
	}

	if first := forms.First(sub.Validate()); first != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", first.Message)
		return
	}

	if err := h.Svc.Process(c.Request.Context(), sub); err != nil {
		var fieldErr forms.FieldError
		switch {
		case errors.As(err, &fieldErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", fieldErr.Message)
		case errors.Is(err, ErrCaptchaFailed):
			respond.Error(c, http.StatusBadRequest, "captcha_failed", "We could not verify your submission. Please try again.")
		default:
			respond.Error(c, http.StatusInternalServerError, "dispatch_failed", "Something went wrong sending your message. Please try again later.")
		}
		return
	}

	respond.Message(c, "Thank you for your enquiry. We will be in touch shortly.")
}
