package commentControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/services"
)

// The comment listing takes the product id in the request body, not the
// URL; existing clients post {"id": N}.
type ListCommentsRequest struct {
	ID uint `json:"id"`
}

type CommentResponse struct {
	Text      string `json:"text"`
	User      string `json:"user"`
	Product   string `json:"product"`
	CreatedAt string `json:"created_at"`
}

// POST /comments
func ListProductComments(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListCommentsRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required."})
			return
		}

		comments, err := catalog.ListComments(c.Request.Context(), req.ID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			case errors.Is(err, services.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
			}
			return
		}

		out := make([]CommentResponse, 0, len(comments))
		for _, comment := range comments {
			out = append(out, CommentResponse{
				Text:      comment.Text,
				User:      comment.User.Username,
				Product:   comment.Product.Name,
				CreatedAt: comment.CreatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
