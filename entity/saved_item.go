package entity

import (
	"time"
)

// SavedItem links a user to a wishlisted jersey. Existence-only: re-saving
// the same product is a no-op enforced by the unique key.
type SavedItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_saved_user_product" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ProductID string `gorm:"not null;uniqueIndex:idx_saved_user_product" json:"productId"`

	CreatedAt time.Time `json:"createdAt"`
}
