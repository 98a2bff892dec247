package dto

import (
	"time"

	"github.com/winelabelmaker/winelabel-go/models"
)

type CreateMessageDTO struct {
	Text     string  `json:"text" binding:"required,max=2000"`
	ImageURL *string `json:"image_url"`
}

type GetMessageDTO struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"user_name"`
	UserSurname string    `json:"user_surname"`
	UserEmail   string    `json:"user_email"`
	CompanyName string    `json:"company_name"`
}

func ToGetMessageDTO(m models.Message) GetMessageDTO {
	return GetMessageDTO{
		ID:          m.ID,
		Text:        m.Text,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UserName:    m.User.Name,
		UserSurname: m.User.Surname,
		UserEmail:   m.User.Email,
		CompanyName: m.User.CompanyName,
	}
}

func ToGetMessageDTOs(messages []models.Message) []GetMessageDTO {
	out := make([]GetMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToGetMessageDTO(m))
	}
	return out
}
