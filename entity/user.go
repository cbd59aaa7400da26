package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `json:"-"`
	GoogleID *string `gorm:"uniqueIndex" json:"-"`

	CartItems   []CartItem  `gorm:"foreignKey:UserID" json:"-"`
	SavedItems  []SavedItem `gorm:"foreignKey:UserID" json:"-"`
	Preference  *Preference `gorm:"foreignKey:UserID" json:"-"`
	SavedDishes []SavedDish `gorm:"foreignKey:UserID" json:"-"`
}

// Public is the projection returned by the API. The password hash never
// leaves the entity layer.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}
