package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
)

type TeamRepository struct{ DB *gorm.DB }

func NewTeamRepository(db *gorm.DB) *TeamRepository { return &TeamRepository{DB: db} }

func (r *TeamRepository) All() ([]entity.Team, error) {
	var teams []entity.Team
	err := r.DB.Order("name").Find(&teams).Error
	return teams, err
}
