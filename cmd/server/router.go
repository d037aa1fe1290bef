package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dhi-workshop/internal/handler"
	"dhi-workshop/internal/middleware"
)

type routerDeps struct {
	health         *handler.HealthHandler
	time           *handler.TimeHandler
	scans          *handler.ScanHandler // nil when the report database is disabled
	allowedOrigins []string
}

func newRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS(deps.allowedOrigins))

	// Health checks and metrics
	router.GET("/ready", deps.health.Ready)
	router.GET("/live", deps.health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", deps.health.Health)
		api.GET("/time", deps.time.GetTime)

		if deps.scans != nil {
			deps.scans.RegisterRoutes(api)
		}
	}

	return router
}
