package repositories

import (
	"github.com/winelabelmaker/winelabel-go/db"
	"github.com/winelabelmaker/winelabel-go/models"
)

type RequestRepo interface {
	Create(request *models.Request) error
	FindAll() ([]models.Request, error)
	FindByUserID(userID string) ([]models.Request, error)
	FindByID(id string) (*models.Request, error)
	Save(request *models.Request) error
	Delete(id string) error
	SearchByOwnerName(term string) ([]models.Request, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(request *models.Request) error {
	return db.DB.Create(request).Error
}

func (r *DBRequestRepo) FindAll() ([]models.Request, error) {
	var requests []models.Request
	err := db.DB.Preload("User").Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *DBRequestRepo) FindByUserID(userID string) ([]models.Request, error) {
	var requests []models.Request
	err := db.DB.Where("user_id = ?", userID).Preload("User").Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *DBRequestRepo) FindByID(id string) (*models.Request, error) {
	var request models.Request
	err := db.DB.Preload("User").First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *DBRequestRepo) Save(request *models.Request) error {
	return db.DB.Save(request).Error
}

func (r *DBRequestRepo) Delete(id string) error {
	return db.DB.Delete(&models.Request{}, "id = ?", id).Error
}

// SearchByOwnerName matches the owner's name or surname case-insensitively.
func (r *DBRequestRepo) SearchByOwnerName(term string) ([]models.Request, error) {
	var requests []models.Request
	pattern := "%" + term + "%"
	err := db.DB.
		Joins("JOIN users ON users.id = requests.user_id").
		Where("users.name ILIKE ? OR users.surname ILIKE ?", pattern, pattern).
		Preload("User").
		Order("requests.created_at desc").
		Find(&requests).Error
	return requests, err
}
