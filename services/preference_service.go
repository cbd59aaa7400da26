package services

import (
	"strings"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
)

type PreferenceService struct {
	repo *repository.PreferenceRepository
}

func NewPreferenceService(repo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns nil when the user never picked a favorite.
func (s *PreferenceService) Get(userID uint) (*entity.Preference, error) {
	return s.repo.Get(userID)
}

// Set overwrites any previous favorite; the preference is a single-valued
// property of the user, not a collection.
func (s *PreferenceService) Set(userID uint, name, logo, teamRef string) (*entity.Preference, error) {
	name = strings.TrimSpace(name)
	if name == "" || logo == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Upsert(&entity.Preference{
		UserID:   userID,
		TeamName: name,
		Logo:     logo,
		TeamRef:  teamRef,
	})
}
