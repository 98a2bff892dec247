package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelabelmaker/winelabel-go/config"
	"github.com/winelabelmaker/winelabel-go/models"
)

func setupJWT() {
	config.JwtSecret = "test-secret"
	config.Issuer = "winelabelmaker-test"
	Init()
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWT()

	user := models.User{
		ID:          "u1",
		Email:       "a@x.com",
		Name:        "Anna",
		Surname:     "Bianchi",
		CompanyName: "Cantina Bianchi",
		Role:        models.UserRoleUser,
	}

	token, expiration, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), expiration, time.Minute)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "Anna", claims.Name)
	assert.Equal(t, "Bianchi", claims.Surname)
	assert.Equal(t, "Cantina Bianchi", claims.CompanyName)
	assert.Equal(t, "winelabelmaker-test", claims.Issuer)
}

func TestParseToken_WrongKey(t *testing.T) {
	setupJWT()
	token, _, err := GenerateToken(models.User{ID: "u1"})
	require.NoError(t, err)

	jwtKey = []byte("another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*Claims)
		c.String(http.StatusOK, claims.UserID)
	})
	return r
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	setupJWT()
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_BadScheme(t *testing.T) {
	setupJWT()
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	setupJWT()
	r := newAuthTestRouter()

	token, _, err := GenerateToken(models.User{ID: "u1", Role: models.UserRoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	setupJWT()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), RequireRole("Admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userToken, _, err := GenerateToken(models.User{ID: "u1", Role: models.UserRoleUser})
	require.NoError(t, err)
	adminToken, _, err := GenerateToken(models.User{ID: "a1", Role: models.UserRoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
