// internal/app/router.go
package app

import (
	customerHandler "mockcrm-service/internal/handlers/customer"
	"mockcrm-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	CustomerHandler *customerHandler.CustomerHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Customers ====================
	customers := api.Group("/customers")
	{
		customers.GET("", h.CustomerHandler.ListCustomers)
		customers.GET("/:id", h.CustomerHandler.GetCustomer)

		customers.POST("", h.CustomerHandler.CreateCustomer)
		// The update id travels in the body and the delete id in the query,
		// so neither route carries a path parameter.
		customers.PUT("", h.CustomerHandler.UpdateCustomer)
		customers.DELETE("", h.CustomerHandler.DeleteCustomer)
	}

	// Everything else is a generic not-found.
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
}
