package respond

import (
	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failed request: a single
// user-facing message under "error". Internal detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error logs the failure with request metadata and sends the error response.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
