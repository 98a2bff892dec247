package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/repositories/mock_repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.RegisterDTO{
		Email:       "a@x.com",
		Password:    "Abcd1234!",
		Name:        "Anna",
		Surname:     "Bianchi",
		CompanyName: "Cantina Bianchi",
	}

	mockUser.EXPECT().FindByEmail("a@x.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, models.UserRoleUser, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Abcd1234!")))
		return nil
	})

	err := svc.Register(input)
	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("a@x.com").Return(models.User{ID: "existing"}, nil)

	err := svc.Register(dto.RegisterDTO{Email: "a@x.com", Password: "pw"})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestRegister_LookupFailure(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	dbErr := errors.New("connection refused")
	mockUser.EXPECT().FindByEmail("a@x.com").Return(models.User{}, dbErr)

	err := svc.Register(dto.RegisterDTO{Email: "a@x.com", Password: "pw"})
	assert.Equal(t, dbErr, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Abcd1234!"), bcrypt.DefaultCost)
	user := models.User{ID: "u1", Email: "a@x.com", Password: string(hashed), Role: models.UserRoleUser}

	mockUser.EXPECT().FindByEmail("a@x.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	expiration := time.Now().Add(middleware.TokenLifetime)
	middleware.GenerateToken = func(u models.User) (string, time.Time, error) {
		assert.Equal(t, "u1", u.ID)
		return "token123", expiration, nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, exp, err := svc.Login("a@x.com", "Abcd1234!")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "token123", token)
	assert.Equal(t, expiration, exp)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("ghost@x.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost@x.com", "whatever")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	mockUser.EXPECT().FindByEmail("a@x.com").Return(models.User{ID: "u1", Password: string(hashed)}, nil)

	_, _, _, err := svc.Login("a@x.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}
