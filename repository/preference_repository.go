package repository

import (
	"errors"

	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct{ DB *gorm.DB }

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Get returns the user's preference, or nil when none was ever set.
func (r *PreferenceRepository) Get(userID uint) (*entity.Preference, error) {
	var p entity.Preference
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert keeps one row per user: a second set overwrites the favorite in
// place.
func (r *PreferenceRepository) Upsert(row *entity.Preference) (*entity.Preference, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_name", "logo", "team_ref", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	var result entity.Preference
	err = r.DB.Where("user_id = ?", row.UserID).First(&result).Error
	return &result, err
}
