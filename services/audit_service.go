package services

import (
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.repos.Audit.GetAuditLogs(params)
}
