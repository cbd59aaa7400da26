package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) All() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Preload("Team").Find(&products).Error
	return products, err
}
