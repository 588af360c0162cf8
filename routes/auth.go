package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/ODILJON-QOBILOV/e-commerce-1.0/controllers/user"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(deps.Auth))
		authGroup.POST("/login", userControllers.Login(deps.Auth))
		authGroup.POST("/refresh", userControllers.Refresh(deps.Auth))

		authGroup.GET("/me", middleware.RequireAuth(deps.JWTSecret), userControllers.GetMe(deps.Auth))
	}
}
