package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message writes a 200 OK response carrying a human-readable message,
// the success shape used by the form endpoints.
func Message(c *gin.Context, text string) {
	JSON(c, http.StatusOK, gin.H{"message": text})
}
