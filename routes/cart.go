package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/ODILJON-QOBILOV/e-commerce-1.0/controllers/cart"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/middleware"
)

// SetupCartRoutes registers the "/cart" endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth(deps.JWTSecret))
	{
		cartGroup.POST("", cartControllers.AddCartLine(deps.Cart))
		cartGroup.GET("", cartControllers.GetCart(deps.Cart))
	}
}
