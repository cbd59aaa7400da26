package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedDishRepository struct{ DB *gorm.DB }

func NewSavedDishRepository(db *gorm.DB) *SavedDishRepository {
	return &SavedDishRepository{DB: db}
}

// ListByUser returns the newest bookmarks first.
func (r *SavedDishRepository) ListByUser(userID uint) ([]entity.SavedDish, error) {
	var dishes []entity.SavedDish
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&dishes).Error
	return dishes, err
}

func (r *SavedDishRepository) Save(row *entity.SavedDish) (dish *entity.SavedDish, created bool, err error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "country"}, {Name: "dish"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	var existing entity.SavedDish
	err = r.DB.Where("user_id = ? AND country = ? AND dish = ?", row.UserID, row.Country, row.Dish).
		First(&existing).Error
	return &existing, false, err
}

func (r *SavedDishRepository) Remove(id, userID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.SavedDish{})
	return res.RowsAffected, res.Error
}
