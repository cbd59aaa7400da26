package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListByUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// AddOrIncrement applies the cart line as one atomic statement: insert, or
// on the (user_id, product_id) key bump quantity by the incoming amount.
// Two concurrent adds for the same product both land; the name/price
// snapshot from the first add is kept.
func (r *CartRepository) AddOrIncrement(row *entity.CartItem) (*entity.CartItem, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	var result entity.CartItem
	err = r.DB.Where("user_id = ? AND product_id = ?", row.UserID, row.ProductID).
		First(&result).Error
	return &result, err
}

// Remove deletes a line only when it belongs to userID. Returns the number
// of rows removed so the caller can report NotFound for foreign ids.
func (r *CartRepository) Remove(id, userID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
