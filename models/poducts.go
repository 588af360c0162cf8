package models

import "time"

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	Price         int64          `gorm:"not null;check:price >= 0" json:"price"` // minor currency units
	Count         int            `gorm:"default:0" json:"count"`
	SubCategoryID uint           `gorm:"index" json:"subcategory_id"`
	UserID        string         `gorm:"index;not null" json:"user_id"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ProductImage only records the public URL; the files themselves live
// behind the upload service.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string `gorm:"not null" json:"url"`
	ProductID uint   `gorm:"index" json:"product_id"`
}
