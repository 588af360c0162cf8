package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByProduct(ctx context.Context, productID uint) ([]models.Comment, error)
}

type commentRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCommentRepository(db *gorm.DB, logger *zap.Logger) CommentRepository {
	return &commentRepo{db: db, logger: logger}
}

func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("failed to create comment", zap.Error(err))
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepo) ListByProduct(ctx context.Context, productID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
