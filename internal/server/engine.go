package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lucas-b-santos/invoice-dashboard/internal/config"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/logger"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/metrics"
	"github.com/lucas-b-santos/invoice-dashboard/internal/observability/tracing"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:    log.Named("http"),
		SkipPaths: []string{"/healthz"},
	}))
	engine.Use(tracing.GinMiddleware(cfg.ServiceName))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return engine
}
