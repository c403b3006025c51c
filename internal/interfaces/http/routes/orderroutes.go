package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "dishpatch/internal/interfaces/http/handlers/order"
	"dishpatch/internal/interfaces/http/middleware"
	"dishpatch/internal/shared/logger"
)

type OrderRouteConfig struct {
	OrderHandler *orderhandlers.OrderHandler
	Logger       logger.Interface
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	orders := engine.Group("/orders")
	orders.Use(middleware.Identity(config.Logger))
	{
		orders.PATCH("/:id/status", config.OrderHandler.UpdateStatus)
		orders.POST("/:id/accept", config.OrderHandler.AcceptOrder)
		orders.POST("/:id/delivery-start", config.OrderHandler.StartDelivery)
		orders.POST("/:id/complete", config.OrderHandler.CompleteDelivery)

		orders.GET("/:id", config.OrderHandler.GetOrder)
	}
}
