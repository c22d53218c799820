package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"consultancy-backend/internal/careers"
	"consultancy-backend/internal/consent"
	"consultancy-backend/internal/contact"
	"consultancy-backend/internal/content"
	"consultancy-backend/internal/seo"
	"consultancy-backend/internal/shared/config"
	"consultancy-backend/internal/shared/server/middleware"
	"consultancy-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	ConsentHandler *consent.Handler
	ContactHandler *contact.Handler
	CareersHandler *careers.Handler
	ContentHandler *content.Handler
	SEOHandler     *seo.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     deps.Config.CORSAllowOrigin,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	root := r.Group("")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ContactHandler.RegisterRoutes(root)
	deps.CareersHandler.RegisterRoutes(root)
	deps.ConsentHandler.RegisterRoutes(root)
	deps.ContentHandler.RegisterRoutes(root)
	deps.SEOHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
