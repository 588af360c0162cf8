package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/services"
)

type CartLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /cart
func AddCartLine(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := cart.AddOrUpdateLine(c.Request.Context(), userID, input.ProductID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Added to cart successfully",
			"line":    line,
		})
	}
}

// GET /cart
//
// An empty cart answers 404 with a message body rather than 200 with an
// empty array; clients depend on that shape.
func GetCart(cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		lines, err := cart.ListLines(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "No items in the cart."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, lines)
	}
}
