package entity

import (
	"time"
)

// SavedDish is a (user, country, dish) bookmark from the dishes screen.
type SavedDish struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_dish_user_country_dish" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Country string `gorm:"not null;uniqueIndex:idx_dish_user_country_dish" json:"country"`
	Dish    string `gorm:"not null;uniqueIndex:idx_dish_user_country_dish" json:"dish"`
	Image   string `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
}
