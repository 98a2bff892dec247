package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
)

// LogAudit records a mutation with before/after snapshots. Audit failures
// are logged and never fail the request that triggered them.
func LogAudit(c *gin.Context, action, resourceType, resourceID string, before, after any, description string, repo repositories.AuditRepo) {
	var userID string
	if claims, err := GetClaims(c); err == nil {
		userID = claims.UserID
	}

	var oldData, newData []byte
	var err error
	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	audit := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Description:  description,
	}

	if err := repo.CreateAuditLog(audit); err != nil {
		log.Printf("Failed to write audit log: %v", err)
	}
}
