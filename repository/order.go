package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
)

type OrderRepository interface {
	// PlaceFromCart reads the user's cart lines, sums their prices into
	// order.TotalPrice, persists the order and deletes exactly the rows
	// it read, all inside one transaction. Returns ErrEmptyCart when the
	// user has no lines; any failure rolls the whole placement back.
	PlaceFromCart(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
}

type orderRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderRepository(db *gorm.DB, logger *zap.Logger) OrderRepository {
	return &orderRepo{db: db, logger: logger}
}

func (r *orderRepo) PlaceFromCart(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The snapshot, the sum and the delete all see the same rows;
		// an upsert committing after this read waits on its row and
		// either lands before the read or survives as a fresh line.
		var lines []models.CartLine
		if err := tx.Where("user_id = ?", order.UserID).
			Order("added_at ASC").
			Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total int64
		lineIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			total += line.Price
			lineIDs = append(lineIDs, line.ID)
		}
		order.TotalPrice = total

		if err := tx.Create(order).Error; err != nil {
			return err
		}
		// Delete only the snapshotted lines; a line added concurrently
		// stays in the cart instead of being silently lost.
		if err := tx.Where("id IN ?", lineIDs).
			Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return ErrEmptyCart
		}
		r.logger.Error("failed to place order",
			zap.String("user_id", order.UserID),
			zap.Error(err))
		return fmt.Errorf("place order: %w", err)
	}
	return nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ordered_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
