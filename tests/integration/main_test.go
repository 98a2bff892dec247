package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/winelabelmaker/winelabel-go/config"
	"github.com/winelabelmaker/winelabel-go/db"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/handlers"
	"github.com/winelabelmaker/winelabel-go/internal/testutils"
	"github.com/winelabelmaker/winelabel-go/labelstore"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/routes"
	"github.com/winelabelmaker/winelabel-go/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	mailer *recordingSender
	store  labelstore.Store
)

type recordedMail struct {
	To         string
	Subject    string
	Body       string
	Attachment string
}

type recordingSender struct {
	mails []recordedMail
}

func (s *recordingSender) SendSimple(to, subject, body string) bool {
	s.mails = append(s.mails, recordedMail{To: to, Subject: subject, Body: body})
	return true
}

func (s *recordingSender) SendWithAttachment(to, subject, body, path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	s.mails = append(s.mails, recordedMail{To: to, Subject: subject, Body: body, Attachment: path})
	return true
}

func (s *recordingSender) reset() { s.mails = nil }

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	config.AdminEmail = "admin@winelabelmaker.it"
	config.AdminPassword = "Admin123!"
	middleware.Init()

	db.InitWithGormDB(gormDB)
	db.Migrate()
	db.SeedAdmin()

	templates := email.DefaultTemplates()
	mailer = &recordingSender{}

	labelsDir, err := os.MkdirTemp("", "labels-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(labelsDir)

	store, err = labelstore.NewDiskStore(labelsDir)
	if err != nil {
		log.Fatal(err)
	}

	repos := repositories.New()
	svc := services.New(repos, templates, mailer)
	h := handlers.New(svc, repos, templates, mailer, store)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, h)

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectStatus, w.Code, "unexpected status for %s %s: %s", method, path, w.Body.String())
	return w
}

func registerUser(t *testing.T, emailAddr, password, name, surname string) {
	body := dto.RegisterDTO{
		Email:    emailAddr,
		Password: password,
		Name:     name,
		Surname:  surname,
	}
	doRequest(t, http.MethodPost, "/api/AspNetUser/Register", "", body, http.StatusOK)
}

func loginUser(t *testing.T, username, password string) (string, string) {
	resp := doRequest(t, http.MethodPost, "/api/AspNetUser/Login", "", dto.LoginDTO{Username: username, Password: password}, http.StatusOK)

	var result dto.LoginResponseDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token, result.Role
}

func loginAdmin(t *testing.T) string {
	token, role := loginUser(t, "admin@winelabelmaker.it", "Admin123!")
	require.Equal(t, "Admin", role)
	return token
}

func createRequest(t *testing.T, token, description string) dto.GetRequestDTO {
	resp := doRequest(t, http.MethodPost, "/api/Request/createRequest", token, dto.CreateRequestDTO{Description: description}, http.StatusOK)

	var result dto.GetRequestDTO
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.ID)
	return result
}
