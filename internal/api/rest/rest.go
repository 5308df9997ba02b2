package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/orderguard/risk-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Order submission and dashboard reads (open)
		v1.POST("/orders", handler.SubmitOrder)
		v1.GET("/orders", handler.ListOrders)
		v1.GET("/orders/customer/:email", handler.GetCustomerHistory)

		// Destructive operations require authentication
		v1.DELETE("/orders/:id", middleware.Auth(authCfg), handler.DeleteOrder)
	}
}
