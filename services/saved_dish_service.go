package services

import (
	"strings"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
)

type SavedDishService struct {
	repo *repository.SavedDishRepository
}

func NewSavedDishService(repo *repository.SavedDishRepository) *SavedDishService {
	return &SavedDishService{repo: repo}
}

func (s *SavedDishService) List(userID uint) ([]entity.SavedDish, error) {
	return s.repo.ListByUser(userID)
}

func (s *SavedDishService) Save(userID uint, country, dish, image string) (*entity.SavedDish, bool, error) {
	country = strings.TrimSpace(country)
	dish = strings.TrimSpace(dish)
	if country == "" || dish == "" {
		return nil, false, ErrInvalidInput
	}
	return s.repo.Save(&entity.SavedDish{
		UserID:  userID,
		Country: country,
		Dish:    dish,
		Image:   image,
	})
}

func (s *SavedDishService) Remove(userID, dishID uint) error {
	rows, err := s.repo.Remove(dishID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
