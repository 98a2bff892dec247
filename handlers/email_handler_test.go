package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/labelstore"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/repositories/mock_repositories"
	"github.com/winelabelmaker/winelabel-go/services"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

type recordedMail struct {
	To         string
	Subject    string
	Body       string
	Attachment string
}

type stubSender struct {
	mails []recordedMail
	fail  bool
}

func (s *stubSender) SendSimple(to, subject, body string) bool {
	if s.fail {
		return false
	}
	s.mails = append(s.mails, recordedMail{To: to, Subject: subject, Body: body})
	return true
}

func (s *stubSender) SendWithAttachment(to, subject, body, path string) bool {
	if s.fail {
		return false
	}
	s.mails = append(s.mails, recordedMail{To: to, Subject: subject, Body: body, Attachment: path})
	return true
}

type emailHandlerEnv struct {
	router      *gin.Engine
	mockRequest *mock_repositories.MockRequestRepo
	sender      *stubSender
	store       labelstore.Store
}

func setupEmailHandler(t *testing.T) *emailHandlerEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	repos := &repositories.Repos{Request: mockRequest}

	templates := email.DefaultTemplates()
	sender := &stubSender{}
	store, err := labelstore.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	requestService := services.NewRequestService(repos, templates, sender)
	h := NewEmailHandler(requestService, templates, sender, store)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// stand-in for the auth middleware: the group is admin-gated in routing
	router.Use(func(c *gin.Context) {
		c.Set("claims", &middleware.Claims{UserID: "admin-1", Role: "Admin"})
	})
	router.POST("/api/Email/completed", h.SendCompleted)
	router.POST("/api/Email/sendQuote", h.SendQuote)
	router.POST("/api/Email/uploadLabel", h.UploadLabel)

	return &emailHandlerEnv{router: router, mockRequest: mockRequest, sender: sender, store: store}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func completedRequest() *models.Request {
	return &models.Request{
		ID:     "r1",
		Status: models.RequestStatusCompleted,
		UserID: "u1",
		User:   models.User{ID: "u1", Email: "owner@x.com", Name: "Anna", Surname: "Bianchi"},
	}
}

// --------------------- /api/Email/completed ---------------------
func TestSendCompleted_Success(t *testing.T) {
	env := setupEmailHandler(t)

	require.NoError(t, env.store.Save(context.Background(), "label.png", strings.NewReader("png"), 3, "image/png"))
	env.mockRequest.EXPECT().FindByID("r1").Return(completedRequest(), nil)

	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "r1", ImageName: "label.png"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.sender.mails, 1)
	assert.Equal(t, "owner@x.com", env.sender.mails[0].To)
	assert.Contains(t, env.sender.mails[0].Subject, "Completata")
	assert.Contains(t, env.sender.mails[0].Body, "r1")
	assert.NotEmpty(t, env.sender.mails[0].Attachment)
}

func TestSendCompleted_CustomBodyOverridesDefault(t *testing.T) {
	env := setupEmailHandler(t)

	require.NoError(t, env.store.Save(context.Background(), "label.png", strings.NewReader("png"), 3, "image/png"))
	env.mockRequest.EXPECT().FindByID("r1").Return(completedRequest(), nil)

	custom := "Testo personalizzato"
	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "r1", ImageName: "label.png", CustomBody: &custom})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.sender.mails, 1)
	assert.Equal(t, "Testo personalizzato", env.sender.mails[0].Body)
}

func TestSendCompleted_RequestNotFound(t *testing.T) {
	env := setupEmailHandler(t)

	env.mockRequest.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "missing", ImageName: "label.png"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendCompleted_RequestNotCompleted(t *testing.T) {
	env := setupEmailHandler(t)

	pending := completedRequest()
	pending.Status = models.RequestStatusInProgress
	env.mockRequest.EXPECT().FindByID("r1").Return(pending, nil)

	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "r1", ImageName: "label.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.sender.mails)
}

func TestSendCompleted_ImageMissing(t *testing.T) {
	env := setupEmailHandler(t)

	env.mockRequest.EXPECT().FindByID("r1").Return(completedRequest(), nil)

	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "r1", ImageName: "nope.png"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, env.sender.mails)
}

func TestSendCompleted_DeliveryFailure(t *testing.T) {
	env := setupEmailHandler(t)
	env.sender.fail = true

	require.NoError(t, env.store.Save(context.Background(), "label.png", strings.NewReader("png"), 3, "image/png"))
	env.mockRequest.EXPECT().FindByID("r1").Return(completedRequest(), nil)

	w := postJSON(t, env.router, "/api/Email/completed", dto.EmailCompletedDTO{RequestID: "r1", ImageName: "label.png"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --------------------- /api/Email/sendQuote ---------------------
func TestSendQuote_Success(t *testing.T) {
	env := setupEmailHandler(t)

	quoted := completedRequest()
	quoted.Status = models.RequestStatusQuoteSent
	env.mockRequest.EXPECT().FindByID("r1").Return(quoted, nil)

	w := postJSON(t, env.router, "/api/Email/sendQuote", dto.EmailQuoteDTO{RequestID: "r1", CustomBody: "Preventivo: 300 EUR"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.sender.mails, 1)
	assert.Contains(t, env.sender.mails[0].Subject, "Preventivo inviato")
	assert.Equal(t, "Preventivo: 300 EUR", env.sender.mails[0].Body)
}

func TestSendQuote_WrongStatus(t *testing.T) {
	env := setupEmailHandler(t)

	env.mockRequest.EXPECT().FindByID("r1").Return(completedRequest(), nil)

	w := postJSON(t, env.router, "/api/Email/sendQuote", dto.EmailQuoteDTO{RequestID: "r1", CustomBody: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.sender.mails)
}

func TestSendQuote_MissingBody(t *testing.T) {
	env := setupEmailHandler(t)

	w := postJSON(t, env.router, "/api/Email/sendQuote", map[string]string{"request_id": "r1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --------------------- /api/Email/uploadLabel ---------------------
func uploadFile(t *testing.T, router *gin.Engine, field, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/Email/uploadLabel", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadLabel_Success(t *testing.T) {
	env := setupEmailHandler(t)

	w := uploadFile(t, env.router, "labelImage", "barolo.png", "png bytes")
	assert.Equal(t, http.StatusOK, w.Code)

	path, ok, err := env.store.Fetch(context.Background(), "barolo.png")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, path)
}

func TestUploadLabel_OverwritesExisting(t *testing.T) {
	env := setupEmailHandler(t)

	w := uploadFile(t, env.router, "labelImage", "barolo.png", "first")
	require.Equal(t, http.StatusOK, w.Code)
	w = uploadFile(t, env.router, "labelImage", "barolo.png", "second version")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadLabel_MissingFile(t *testing.T) {
	env := setupEmailHandler(t)

	w := uploadFile(t, env.router, "wrongField", "barolo.png", "x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
