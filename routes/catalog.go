package routes

import (
	"github.com/gin-gonic/gin"

	commentControllers "github.com/ODILJON-QOBILOV/e-commerce-1.0/controllers/comment"
	productcontroller "github.com/ODILJON-QOBILOV/e-commerce-1.0/controllers/product"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/middleware"
)

// SetupCatalogRoutes registers product, category and comment endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	products.Use(middleware.RequireAuth(deps.JWTSecret))
	{
		products.POST("", productcontroller.CreateProduct(deps.Catalog))
		products.GET("", productcontroller.GetProducts(deps.Catalog))
		products.GET("/:id", productcontroller.GetProductByID(deps.Catalog))
		products.PUT("/:id", productcontroller.UpdateProduct(deps.Catalog))
		products.PATCH("/:id", productcontroller.UpdateProduct(deps.Catalog))
		products.DELETE("/:id", productcontroller.DeleteProduct(deps.Catalog))
	}

	r.GET("/categories", middleware.RequireAuth(deps.JWTSecret), productcontroller.GetCategories(deps.Catalog))

	r.POST("/comments", middleware.RequireAuth(deps.JWTSecret), commentControllers.ListProductComments(deps.Catalog))
}
