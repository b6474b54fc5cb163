package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge-backend/internal/ai"
	"resumeforge-backend/internal/drafts"
	"resumeforge-backend/internal/extract"
	"resumeforge-backend/internal/pages"
	"resumeforge-backend/internal/render"
	"resumeforge-backend/internal/shared/config"
	"resumeforge-backend/internal/shared/server/middleware"
	"resumeforge-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	AIHandler     *ai.Handler
	DraftsHandler *drafts.Handler
	RenderHandler *render.Handler
	PagesHandler  *pages.Handler
	ImportHandler *extract.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	root := r.Group("/")
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.PagesHandler.RegisterRoutes(root)
	deps.RenderHandler.RegisterRoutes(root)
	deps.AIHandler.RegisterRoutes(root)
	deps.DraftsHandler.RegisterRoutes(root)
	deps.ImportHandler.RegisterRoutes(root)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
