package repository

import (
	"github.com/Isaacjdv/futbolapp-backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts and lets the email unique constraint decide duplicates;
// no pre-check, so two concurrent registrations can't race past each other.
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// AttachGoogleID links a federated identity to an existing email account.
func (r *UserRepository) AttachGoogleID(userID uint, sub string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("google_id", sub).Error
}
