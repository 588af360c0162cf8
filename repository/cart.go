package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
)

type CartRepository interface {
	// Upsert inserts the line or, when a line for the same (user, product)
	// pair exists, overwrites its quantity and price. The original added_at
	// is kept so a repeat add does not move the line in the listing. The
	// write is a single INSERT ... ON CONFLICT, not read-then-write.
	Upsert(ctx context.Context, line *models.CartLine) error
	ListByUser(ctx context.Context, userID string) ([]models.CartLine, error)
}

type cartRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCartRepository(db *gorm.DB, logger *zap.Logger) CartRepository {
	return &cartRepo{db: db, logger: logger}
}

func (r *cartRepo) Upsert(ctx context.Context, line *models.CartLine) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"product_name", "quantity", "price",
		}),
	}).Create(line).Error
	if err != nil {
		r.logger.Error("failed to upsert cart line",
			zap.String("user_id", line.UserID),
			zap.Uint("product_id", line.ProductID),
			zap.Error(err))
		return fmt.Errorf("upsert cart line: %w", err)
	}

	// On the conflict path Create does not refresh the struct, so read the
	// canonical row back for the caller.
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", line.UserID, line.ProductID).
		First(line).Error; err != nil {
		return fmt.Errorf("reload cart line: %w", err)
	}
	return nil
}

// ListByUser returns the user's lines in insertion order.
func (r *cartRepo) ListByUser(ctx context.Context, userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}
