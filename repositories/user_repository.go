package repositories

import (
	"github.com/winelabelmaker/winelabel-go/db"
	"github.com/winelabelmaker/winelabel-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) FindByID(id string) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, "id = ?", id).Error
	return user, err
}
