package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

// Register creates a User-role account. Accounts always start as plain
// users; the admin is seeded at startup, never registered.
func (s *UserService) Register(input dto.RegisterDTO) error {
	_, err := s.repos.User.FindByEmail(input.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       input.Email,
		Password:    string(hashed),
		Name:        input.Name,
		Surname:     input.Surname,
		CompanyName: input.CompanyName,
		Phone:       input.PhoneNumber,
		Role:        models.UserRoleUser,
	}

	return s.repos.User.Create(&user)
}

// Login verifies credentials and issues a bearer token with a fixed expiry.
func (s *UserService) Login(username, password string) (models.User, string, time.Time, error) {
	user, err := s.repos.User.FindByEmail(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", time.Time{}, ErrUserNotFound
		}
		return models.User{}, "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiration, err := middleware.GenerateToken(user)
	if err != nil {
		return models.User{}, "", time.Time{}, err
	}

	return user, token, expiration, nil
}
