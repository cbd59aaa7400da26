package entity

import (
	"gorm.io/gorm"
)

// Product is a locally stored jersey. The /api/products listing is served
// from the external store proxy; this table backs the xlsx export and the
// seeded rows.
type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`

	TeamID *uint `json:"teamId"`
	Team   *Team `json:"-"`
}
