package handlers

import (
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/labelstore"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/services"
)

type Handlers struct {
	User    *UserHandler
	Request *RequestHandler
	Email   *EmailHandler
	Message *MessageHandler
	Audit   *AuditHandler
}

func New(svc *services.Services, repos *repositories.Repos, templates *email.Templates, sender email.Sender, store labelstore.Store) *Handlers {
	requestHandler := NewRequestHandler(svc.Request, repos.Audit)
	return &Handlers{
		User:    NewUserHandler(svc.User),
		Request: requestHandler,
		Email:   NewEmailHandler(svc.Request, templates, sender, store),
		Message: NewMessageHandler(svc.Message, requestHandler),
		Audit:   NewAuditHandler(svc.Audit),
	}
}
