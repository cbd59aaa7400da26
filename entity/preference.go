package entity

import (
	"time"
)

// Preference holds a user's favorite team. At most one row per user; a
// second set overwrites the first via upsert on user_id.
type Preference struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	TeamName string `gorm:"not null" json:"name"`
	Logo     string `json:"logo"`
	// TeamRef is the source id of the chosen entity when the reference
	// listing came from the external provider.
	TeamRef string `json:"teamRef"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
