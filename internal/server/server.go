package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/shared/config"
	"hiresight-ml/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with the middleware chain and all routes
// registered.
func NewEngine(cfg config.Config, deps RouteDeps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	registerRoutes(engine, deps)
	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
