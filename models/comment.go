package models

import "time"

// Comment is append-only; there is no edit or delete path.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"size:200;not null" json:"text"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	UserID    string    `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
