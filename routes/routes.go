package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/services"
)

// Deps carries everything the route groups need.
type Deps struct {
	JWTSecret string
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Orders    *services.OrderService
}

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes plus the token-protected /auth/me
	SetupAuthRoutes(r, deps)

	// Everything below requires a bearer access token
	SetupCatalogRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
}
