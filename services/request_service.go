package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/utils"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound    = errors.New("request not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("caller identity not resolved")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidStatus      = errors.New("invalid status")
)

// RequestService orchestrates the label-request lifecycle: CRUD with
// ownership/role visibility plus the best-effort status notification.
type RequestService struct {
	repos     *repositories.Repos
	templates *email.Templates
	sender    email.Sender
}

func NewRequestService(repos *repositories.Repos, templates *email.Templates, sender email.Sender) *RequestService {
	return &RequestService{repos: repos, templates: templates, sender: sender}
}

// ListRequests returns every request for admins and only the caller's own
// requests otherwise. An empty result is an empty slice, not an error.
func (s *RequestService) ListRequests(claims *middleware.Claims) ([]models.Request, error) {
	if claims.Role == string(models.UserRoleAdmin) {
		return s.repos.Request.FindAll()
	}
	return s.repos.Request.FindByUserID(claims.UserID)
}

// GetRequest distinguishes an absent request (ErrRequestNotFound) from one
// the caller may not see (ErrForbidden).
func (s *RequestService) GetRequest(id string, claims *middleware.Claims) (*models.Request, error) {
	request, err := s.repos.Request.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !utils.CanAccessRequest(claims.Role, claims.UserID, request.UserID) {
		return nil, ErrForbidden
	}
	return request, nil
}

// CreateRequest opens a new request in Pending for the calling user.
func (s *RequestService) CreateRequest(description string, claims *middleware.Claims) (*models.Request, error) {
	if claims.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if claims.Role != string(models.UserRoleUser) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(description) == "" || len(description) > models.MaxDescriptionLength {
		return nil, ErrInvalidDescription
	}

	request := &models.Request{
		ID:          uuid.NewString(),
		Description: description,
		Status:      models.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
		UserID:      claims.UserID,
	}
	if err := s.repos.Request.Create(request); err != nil {
		return nil, err
	}

	// re-read with the owner joined for the response shape
	return s.repos.Request.FindByID(request.ID)
}

// UpdateDescription lets the owning user edit the request text. Status is
// never touched here.
func (s *RequestService) UpdateDescription(id, description string, claims *middleware.Claims) (*models.Request, error) {
	if strings.TrimSpace(description) == "" || len(description) > models.MaxDescriptionLength {
		return nil, ErrInvalidDescription
	}

	request, err := s.repos.Request.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if request.UserID != claims.UserID {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	request.Description = description
	request.UpdatedAt = &now
	request.UpdatedByUserID = &claims.UserID

	if err := s.repos.Request.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateStatus sets the workflow status as an explicit admin action. Only
// enum membership is checked; any status may be set from any status. After
// the row is persisted the status notification fires best-effort.
func (s *RequestService) UpdateStatus(id string, status models.RequestStatus, claims *middleware.Claims) (*models.Request, error) {
	if claims.Role != string(models.UserRoleAdmin) {
		return nil, ErrForbidden
	}
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	request, err := s.repos.Request.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	request.Status = status
	request.UpdatedAt = &now
	request.UpdatedByUserID = &claims.UserID

	if err := s.repos.Request.Save(request); err != nil {
		return nil, err
	}

	s.notifyStatusChange(request)

	return request, nil
}

// notifyStatusChange is the post-commit hook behind every status change:
// it mails the owner the default text for the new status and swallows any
// delivery failure. The status change is never rolled back and the send is
// never retried. Statuses without a default body send nothing.
func (s *RequestService) notifyStatusChange(request *models.Request) {
	body, ok := s.templates.Body(request.Status, email.TemplateData{
		Name:      request.User.Name,
		Surname:   request.User.Surname,
		RequestID: request.ID,
	})
	if !ok {
		return
	}

	if sent := s.sender.SendSimple(request.User.Email, s.templates.Subject(request.Status), body); !sent {
		log.Printf("Status notification for request %s not delivered", request.ID)
	}
}

// DeleteRequest permanently removes a request. Owner or admin only. When
// messages still reference the request the database refuses the delete and
// the fault surfaces as a storage error.
func (s *RequestService) DeleteRequest(id string, claims *middleware.Claims) error {
	request, err := s.repos.Request.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if !utils.CanAccessRequest(claims.Role, claims.UserID, request.UserID) {
		return ErrForbidden
	}

	return s.repos.Request.Delete(id)
}

// SearchRequests finds requests whose owner's display name contains term,
// case-insensitively. Admin only; a blank term yields an empty result
// without touching storage.
func (s *RequestService) SearchRequests(term string, claims *middleware.Claims) ([]models.Request, error) {
	if claims.Role != string(models.UserRoleAdmin) {
		return nil, ErrForbidden
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Request{}, nil
	}

	return s.repos.Request.SearchByOwnerName(term)
}
