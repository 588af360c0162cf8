package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/repository"
)

// CartService owns the per-user set of cart lines. A line's price is
// product price times quantity, recomputed on every write; it is never
// frozen at add time.
type CartService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	logger   *zap.Logger
}

func NewCartService(products repository.ProductRepository, carts repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{products: products, carts: carts, logger: logger}
}

// AddOrUpdateLine upserts the (user, product) line. A repeat add for the
// same product replaces quantity and price, it does not accumulate, and
// the line keeps its original added_at position in the cart listing.
func (s *CartService) AddOrUpdateLine(ctx context.Context, userID string, productID uint, quantity int) (*models.CartLine, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d does not exist", ErrNotFound, productID)
		}
		return nil, err
	}

	line := &models.CartLine{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price * int64(quantity),
		AddedAt:     time.Now(),
	}
	if err := s.carts.Upsert(ctx, line); err != nil {
		return nil, err
	}

	s.logger.Info("cart line upserted",
		zap.String("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity))
	return line, nil
}

// ListLines returns the user's lines in insertion order. An empty cart is
// reported as ErrEmptyCart rather than an empty slice; the HTTP contract
// answers 404 for an empty cart.
func (s *CartService) ListLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	lines, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return lines, nil
}
