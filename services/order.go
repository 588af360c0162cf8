package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/repository"
)

// OrderService converts a user's cart into an immutable order and walks
// orders through the delivery lifecycle.
type OrderService struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

func parsePaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(models.PaymentMethodCard):
		return models.PaymentMethodCard, nil
	case string(models.PaymentMethodCash):
		return models.PaymentMethodCash, nil
	default:
		return "", fmt.Errorf("%w: payment method must be card or cash", ErrValidation)
	}
}

// PlaceOrder snapshots the user's cart into a pending order. The
// repository reads the lines, sums their prices and clears them inside
// one transaction, so the total always matches the rows that were
// consumed; it is never a recomputation from live product prices.
func (s *OrderService) PlaceOrder(ctx context.Context, userID, paymentMethod, userLocation string) (*models.Order, error) {
	method, err := parsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userLocation) == "" {
		return nil, fmt.Errorf("%w: user_location is required", ErrValidation)
	}

	order := &models.Order{
		UserID:        userID,
		PaymentMethod: method,
		UserLocation:  userLocation,
		Status:        models.OrderStatusPending,
		OrderedAt:     time.Now(),
	}
	if err := s.orders.PlaceFromCart(ctx, order); err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("user_id", userID),
		zap.Uint("order_id", order.ID),
		zap.Int64("total_price", order.TotalPrice))
	return order, nil
}

// ListOrders returns all of the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// AdvanceStatus moves an order forward through
// pending -> delivering -> delivered. Backward moves and unknown statuses
// are rejected. Only the order's owner may advance it; other users get
// ErrNotFound so order IDs do not leak.
func (s *OrderService) AdvanceStatus(ctx context.Context, userID string, orderID uint, status string) (*models.Order, error) {
	next := models.OrderStatus(strings.ToLower(status))

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, order.Status, status)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}
