package services

import (
	"strings"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
)

type CartService struct {
	repo *repository.CartRepository
}

func NewCartService(repo *repository.CartRepository) *CartService {
	return &CartService{repo: repo}
}

type AddToCartIn struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"omitempty,min=0"`
}

func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	return s.repo.ListByUser(userID)
}

func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartItem, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, ErrInvalidInput
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	row := &entity.CartItem{
		UserID:      userID,
		ProductID:   in.ProductID,
		ProductName: in.Name,
		UnitPrice:   in.Price,
		Quantity:    in.Quantity,
	}
	return s.repo.AddOrIncrement(row)
}

func (s *CartService) Remove(userID, itemID uint) error {
	rows, err := s.repo.Remove(itemID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
