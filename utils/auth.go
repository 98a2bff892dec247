package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
)

var ErrNoClaims = errors.New("no token claims in context")

// GetClaims returns the caller's parsed token claims.
func GetClaims(c *gin.Context) (*middleware.Claims, error) {
	v, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := v.(*middleware.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// CanAccessRequest is the single ownership decision: admins reach every
// request, users only their own.
func CanAccessRequest(role string, callerID string, ownerID string) bool {
	if role == string(models.UserRoleAdmin) {
		return true
	}
	return callerID != "" && callerID == ownerID
}
