package repositories

import (
	"github.com/winelabelmaker/winelabel-go/db"
	"github.com/winelabelmaker/winelabel-go/models"
)

type MessageRepo interface {
	Create(message *models.Message) error
	FindByRequestID(requestID string) ([]models.Message, error)
}

type DBMessageRepo struct{}

func (r *DBMessageRepo) Create(message *models.Message) error {
	return db.DB.Create(message).Error
}

func (r *DBMessageRepo) FindByRequestID(requestID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.DB.Where("request_id = ?", requestID).Preload("User").Order("created_at asc").Find(&messages).Error
	return messages, err
}
