package services

import (
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/repositories"
)

type Services struct {
	User    *UserService
	Request *RequestService
	Message *MessageService
	Audit   *AuditService
}

func New(repos *repositories.Repos, templates *email.Templates, sender email.Sender) *Services {
	return &Services{
		User:    NewUserService(repos),
		Request: NewRequestService(repos, templates, sender),
		Message: NewMessageService(repos),
		Audit:   NewAuditService(repos),
	}
}
