package server

import (
	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/dataset"
	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/insight"
	"hiresight-ml/internal/matching"
	"hiresight-ml/internal/parse"
	"hiresight-ml/internal/services/health"
	"hiresight-ml/internal/shared/metrics"
	"hiresight-ml/internal/shared/server/middleware"
	"hiresight-ml/internal/shared/server/respond"
	"hiresight-ml/internal/skills"
)

// insightRateRule throttles the model-backed endpoints; the deterministic
// endpoints stay unlimited.
var insightRateRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// RouteDeps carries the handlers the router mounts.
type RouteDeps struct {
	Health            *health.Service
	SkillsHandler     *skills.Handler
	ExtractionHandler *extraction.Handler
	MatchingHandler   *matching.Handler
	ParseHandler      *parse.Handler
	InsightHandler    *insight.Handler
	DatasetHandler    *dataset.Handler
}

func registerRoutes(r *gin.Engine, deps RouteDeps) {
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"service": "HireSight ML Service",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")

	if deps.SkillsHandler != nil {
		deps.SkillsHandler.RegisterRoutes(api)
	}
	if deps.ExtractionHandler != nil {
		deps.ExtractionHandler.RegisterRoutes(api)
	}
	if deps.MatchingHandler != nil {
		deps.MatchingHandler.RegisterRoutes(api)
	}
	if deps.ParseHandler != nil {
		deps.ParseHandler.RegisterRoutes(api)
	}
	if deps.InsightHandler != nil {
		ai := api.Group("")
		ai.Use(middleware.RateLimit(insightRateRule, middleware.NewRateLimiter(nil)))
		deps.InsightHandler.RegisterRoutes(ai)
	}
	if deps.DatasetHandler != nil {
		deps.DatasetHandler.RegisterRoutes(api)
	}
}
