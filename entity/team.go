package entity

import (
	"gorm.io/gorm"
)

// Team is a favorite-selectable national team. Seeded at first boot and
// read-only afterwards; also serves as the local fallback for the
// reference-entities listing when the countries API is down.
type Team struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Logo string `json:"logo"`

	Products []Product `gorm:"foreignKey:TeamID" json:"-"`
}
