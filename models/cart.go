package models

import "time"

// CartLine is one product entry in a user's pending cart. The composite
// unique index enforces at most one line per (user, product) pair so the
// repository's insert-or-update cannot race into duplicate rows.
//
// Price is always product price times quantity at the moment of the last
// write, never frozen at first add.
type CartLine struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	ProductName string    `json:"product_name"` // denormalized for display
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       int64     `gorm:"not null" json:"price"`
	AddedAt     time.Time `json:"added_at"`
}
