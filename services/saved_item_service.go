package services

import (
	"strings"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
)

type SavedItemService struct {
	repo *repository.SavedItemRepository
}

func NewSavedItemService(repo *repository.SavedItemRepository) *SavedItemService {
	return &SavedItemService{repo: repo}
}

func (s *SavedItemService) List(userID uint) ([]entity.SavedItem, error) {
	return s.repo.ListByUser(userID)
}

// Save bookmarks a product. created is false when the product was already
// saved; the repeat is reported as success rather than conflict.
func (s *SavedItemService) Save(userID uint, productID string) (*entity.SavedItem, bool, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, false, ErrInvalidInput
	}
	return s.repo.Save(&entity.SavedItem{UserID: userID, ProductID: productID})
}

func (s *SavedItemService) Remove(userID, itemID uint) error {
	rows, err := s.repo.Remove(itemID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
