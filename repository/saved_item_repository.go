package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedItemRepository struct{ DB *gorm.DB }

func NewSavedItemRepository(db *gorm.DB) *SavedItemRepository {
	return &SavedItemRepository{DB: db}
}

func (r *SavedItemRepository) ListByUser(userID uint) ([]entity.SavedItem, error) {
	var items []entity.SavedItem
	err := r.DB.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// Save inserts with DO NOTHING on the (user_id, product_id) key. created
// reports whether this call made the row; on the idempotent repeat the
// existing row is returned instead.
func (r *SavedItemRepository) Save(row *entity.SavedItem) (item *entity.SavedItem, created bool, err error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}

	var existing entity.SavedItem
	err = r.DB.Where("user_id = ? AND product_id = ?", row.UserID, row.ProductID).
		First(&existing).Error
	return &existing, false, err
}

func (r *SavedItemRepository) Remove(id, userID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.SavedItem{})
	return res.RowsAffected, res.Error
}
