package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/oauth"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates the user and issues a token. The duplicate-email case is
// taken from the unique constraint on insert, not a pre-check, so there is
// no window between check and create.
func (s *AuthService) Register(name, email, password string) (*entity.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login deliberately collapses "no such email" and "wrong password" into
// one ErrInvalidCredentials so responses don't enumerate accounts.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Password == "" {
		// federated-only account, no password to verify against
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// FederatedLogin signs in a verified Google identity: create the account on
// first sight (no password hash), or attach the Google id to an existing
// email account. Re-linking an already linked account is a no-op.
func (s *AuthService) FederatedLogin(g *oauth.GoogleUser) (*entity.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(g.Email))

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub := g.Sub
		user = &entity.User{
			Name:     g.Name,
			Email:    email,
			GoogleID: &sub,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	} else if user.GoogleID == nil {
		if err := s.userRepo.AttachGoogleID(user.ID, g.Sub); err != nil {
			return nil, "", err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
