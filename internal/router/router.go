package router

import (
	"net/http"

	"callping/internal/common"
	"callping/internal/config"
	"callping/internal/domain/call"
	"callping/internal/middleware"

	"github.com/gin-gonic/gin"
)

// New creates and configures the Gin router with all middleware and routes.
func New(
	cfg *config.Config,
	callHandler *call.Handler,
) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	// Global middleware stack (order matters)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))
	r.Use(gin.Logger())

	// Public routes
	r.GET("/health", healthCheck)

	api := r.Group("/api/v1")
	{
		callHandler.RegisterRoutes(api)
	}

	return r
}

// healthCheck handles GET /health
func healthCheck(c *gin.Context) {
	common.Success(c, http.StatusOK, "ok", gin.H{
		"status":  "ok",
		"service": "callping",
	})
}
