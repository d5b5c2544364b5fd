package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. v1Middleware guards the
// versioned routes only.
func SetupRoutes(router *gin.Engine, handler Handler, metrics http.Handler, v1Middleware ...gin.HandlerFunc) {
	// Health check and metrics (no version prefix)
	router.GET("/healthz", handler.HealthCheck)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	// API v1 routes
	v1 := router.Group("/v1", v1Middleware...)
	{
		v1.GET("/classify", handler.Classify)
	}
}
