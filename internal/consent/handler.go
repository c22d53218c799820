package consent

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/shared/server/respond"
)

// Handler wires the consent endpoints to the manager.
type Handler struct {
	Manager       *Manager
	MeasurementID string
	loader        Loader
}

// NewHandler constructs a Handler.
func NewHandler(mgr *Manager, measurementID string) *Handler {
	return &Handler{Manager: mgr, MeasurementID: measurementID}
}

// RegisterRoutes attaches consent routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/consent", h.current)
	rg.POST("/consent/accept-all", h.acceptAll)
	rg.POST("/consent/reject-all", h.rejectAll)
	rg.POST("/consent/preferences", h.savePreferences)
	rg.GET("/consent/script", h.script)
}

type stateResponse struct {
	Status           Status  `json:"status"`
	Record           *Record `json:"record,omitempty"`
	AnalyticsAllowed bool    `json:"analyticsAllowed"`
}

func (h *Handler) current(c *gin.Context) {
	rec, status := h.Manager.Current(c)
	resp := stateResponse{Status: status}
	if status == StatusSet {
		resp.Record = &rec
		resp.AnalyticsAllowed = rec.Analytics
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) acceptAll(c *gin.Context) {
	rec := h.Manager.AcceptAll(c)
	respond.JSON(c, http.StatusOK, stateResponse{Status: StatusSet, Record: &rec, AnalyticsAllowed: rec.Analytics})
}

func (h *Handler) rejectAll(c *gin.Context) {
	rec := h.Manager.RejectAll(c)
	respond.JSON(c, http.StatusOK, stateResponse{Status: StatusSet, Record: &rec, AnalyticsAllowed: false})
}

func (h *Handler) savePreferences(c *gin.Context) {
	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	rec := h.Manager.SavePreferences(c, prefs)
	respond.JSON(c, http.StatusOK, stateResponse{Status: StatusSet, Record: &rec, AnalyticsAllowed: rec.Analytics})
}

// script serves the analytics bootstrap only when the stored record grants
// analytics. The snippet is built at most once per process.
func (h *Handler) script(c *gin.Context) {
	rec, status := h.Manager.Current(c)
	if status != StatusSet || !rec.Analytics {
		c.Status(http.StatusNoContent)
		return
	}
	if h.MeasurementID == "" {
		c.Status(http.StatusNoContent)
		return
	}
	snippet, err := h.loader.EnsureLoaded(func() (string, error) {
		return buildAnalyticsSnippet(h.MeasurementID), nil
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build analytics script")
		return
	}
	c.Data(http.StatusOK, "application/javascript", []byte(snippet))
}

// buildAnalyticsSnippet renders the gtag bootstrap. The guard against an
// already-present window.gtag keeps injection idempotent client-side too.
func buildAnalyticsSnippet(measurementID string) string {
	return fmt.Sprintf(`(function(){
  if (window.gtag) { return; }
  var s = document.createElement('script');
  s.async = true;
  s.src = 'https://www.googletagmanager.com/gtag/js?id=%[1]s';
  document.head.appendChild(s);
  window.dataLayer = window.dataLayer || [];
  window.gtag = function(){ dataLayer.push(arguments); };
  gtag('js', new Date());
  gtag('config', '%[1]s', { anonymize_ip: true });
})();
`, measurementID)
}
