package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/ODILJON-QOBILOV/e-commerce-1.0/controllers/order"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/middleware"
)

// SetupOrderRoutes registers the "/orders" endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(deps.JWTSecret))
	{
		orders.POST("", orderControllers.PlaceOrderHandler(deps.Orders))
		orders.GET("", orderControllers.GetUserOrdersHandler(deps.Orders))
		orders.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(deps.Orders))
	}
}
