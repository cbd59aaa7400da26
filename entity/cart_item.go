package entity

import (
	"time"
)

// CartItem is one (user, product) line. The composite unique index is what
// makes the add-or-increment upsert atomic; rows are hard-deleted so a
// removed product can be re-added under the same key.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// ProductID comes from the external catalog, so name and unit price are
	// snapshotted at add time.
	ProductID   string  `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
