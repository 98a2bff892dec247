package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/utils"
	"gorm.io/gorm"
)

// MessageService handles the note thread attached to a request. Visibility
// follows the request: admins and the request owner.
type MessageService struct {
	repos *repositories.Repos
}

func NewMessageService(repos *repositories.Repos) *MessageService {
	return &MessageService{repos: repos}
}

func (s *MessageService) ListMessages(requestID string, claims *middleware.Claims) ([]models.Message, error) {
	request, err := s.repos.Request.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !utils.CanAccessRequest(claims.Role, claims.UserID, request.UserID) {
		return nil, ErrForbidden
	}

	return s.repos.Message.FindByRequestID(requestID)
}

func (s *MessageService) CreateMessage(requestID string, input dto.CreateMessageDTO, claims *middleware.Claims) (*models.Message, error) {
	request, err := s.repos.Request.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !utils.CanAccessRequest(claims.Role, claims.UserID, request.UserID) {
		return nil, ErrForbidden
	}

	message := &models.Message{
		ID:        uuid.NewString(),
		Text:      input.Text,
		ImageURL:  input.ImageURL,
		CreatedAt: time.Now().UTC(),
		RequestID: requestID,
		UserID:    claims.UserID,
	}
	if err := s.repos.Message.Create(message); err != nil {
		return nil, err
	}

	author, err := s.repos.User.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	message.User = author

	return message, nil
}
