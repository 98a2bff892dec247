package dto

import (
	"time"

	"github.com/winelabelmaker/winelabel-go/models"
)

type CreateRequestDTO struct {
	Description string `json:"description" binding:"required,max=5000"`
}

type UpdateRequestDescriptionDTO struct {
	Description string `json:"description" binding:"required,max=5000"`
}

type UpdateRequestStatusDTO struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// GetRequestDTO is the client-facing shape of a request, joined with the
// owner's display fields.
type GetRequestDTO struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	UserSurname string    `json:"user_surname"`
	UserEmail   string    `json:"user_email"`
	CompanyName string    `json:"company_name"`
}

func ToGetRequestDTO(r models.Request) GetRequestDTO {
	return GetRequestDTO{
		ID:          r.ID,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UserName:    r.User.Name,
		UserSurname: r.User.Surname,
		UserEmail:   r.User.Email,
		CompanyName: r.User.CompanyName,
	}
}

func ToGetRequestDTOs(requests []models.Request) []GetRequestDTO {
	out := make([]GetRequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, ToGetRequestDTO(r))
	}
	return out
}
