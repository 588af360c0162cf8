package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // order placed, not yet dispatched
	OrderStatusDelivering OrderStatus = "delivering" // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items

	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// statusRank orders the delivery lifecycle. Transitions may only move to
// a higher rank.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusDelivering: 1,
	OrderStatusDelivered:  2,
}

// CanTransitionTo reports whether moving from s to next is a forward step
// in the pending -> delivering -> delivered lifecycle.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Order is an immutable snapshot of a cart at checkout time; only Status
// moves after creation.
type Order struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string        `gorm:"index;not null" json:"user_id"`
	TotalPrice    int64         `gorm:"not null" json:"total_price"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	UserLocation  string        `json:"user_location"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	OrderedAt     time.Time     `json:"ordered_at"`
}
