package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelabelmaker/winelabel-go/middleware"
)

func TestCanAccessRequest(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		callerID string
		ownerID  string
		want     bool
	}{
		{"admin reaches any request", "Admin", "a1", "u1", true},
		{"admin reaches own request", "Admin", "a1", "a1", true},
		{"owner reaches own request", "User", "u1", "u1", true},
		{"user blocked from foreign request", "User", "u2", "u1", false},
		{"empty caller never matches", "User", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAccessRequest(tc.role, tc.callerID, tc.ownerID))
		})
	}
}

func TestGetClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetClaims(c)
	assert.Equal(t, ErrNoClaims, err)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Set("claims", "not claims")
	_, err = GetClaims(c)
	assert.Equal(t, ErrNoClaims, err)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Set("claims", &middleware.Claims{UserID: "u1"})
	claims, err := GetClaims(c)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}
