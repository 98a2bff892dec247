package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/labelstore"
	"github.com/winelabelmaker/winelabel-go/models"
	"github.com/winelabelmaker/winelabel-go/response"
	"github.com/winelabelmaker/winelabel-go/services"
	"github.com/winelabelmaker/winelabel-go/utils"
)

// EmailHandler covers the admin-triggered mails that are not automatic
// status notifications: the completion mail with the label attached, the
// quote mail, and the label image upload feeding the attachments.
type EmailHandler struct {
	requests  *services.RequestService
	templates *email.Templates
	sender    email.Sender
	store     labelstore.Store
}

func NewEmailHandler(requests *services.RequestService, templates *email.Templates, sender email.Sender, store labelstore.Store) *EmailHandler {
	return &EmailHandler{requests: requests, templates: templates, sender: sender, store: store}
}

// SendCompleted godoc
// @Summary Send the completion mail with the label attached
// @Description Admin only. The request must already be Completed and the
// @Description named label image must have been uploaded.
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.EmailCompletedDTO true "Request, optional body override and image name"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Request not Completed"
// @Failure 404 {object} response.ErrorResponse "Request or image not found"
// @Failure 500 {object} response.ErrorResponse "Delivery failed"
// @Router /api/Email/completed [post]
func (h *EmailHandler) SendCompleted(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.EmailCompletedDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	request, err := h.requests.GetRequest(input.RequestID, claims)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if request.Status != models.RequestStatusCompleted {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Request is not completed"})
		return
	}

	body := h.templates.CompletedBody(email.TemplateData{
		Name:      request.User.Name,
		Surname:   request.User.Surname,
		RequestID: request.ID,
	})
	if input.CustomBody != nil && *input.CustomBody != "" {
		body = *input.CustomBody
	}

	path, ok, err := h.store.Fetch(c.Request.Context(), input.ImageName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Label image not found"})
		return
	}

	subject := h.templates.Subject(models.RequestStatusCompleted)
	if !h.sender.SendWithAttachment(request.User.Email, subject, body, path) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Mail delivery failed"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Mail inviata con successo!"})
}

// SendQuote godoc
// @Summary Send the quote mail for a request
// @Description Admin only. The request must be in QuoteSent; the quote text
// @Description is free-form and always supplied by the admin.
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.EmailQuoteDTO true "Request and quote text"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Request not in QuoteSent"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 500 {object} response.ErrorResponse "Delivery failed"
// @Router /api/Email/sendQuote [post]
func (h *EmailHandler) SendQuote(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.EmailQuoteDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	request, err := h.requests.GetRequest(input.RequestID, claims)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if request.Status != models.RequestStatusQuoteSent {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Request is not in quote stage"})
		return
	}

	subject := h.templates.Subject(models.RequestStatusQuoteSent)
	if !h.sender.SendSimple(request.User.Email, subject, input.CustomBody) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Mail delivery failed"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Mail inviata con successo!"})
}

// UploadLabel godoc
// @Summary Upload a finished label image
// @Description Admin only. Images live in a flat namespace keyed by original
// @Description filename; uploading the same name overwrites silently.
// @Tags email
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param labelImage formData file true "Label image"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Missing file"
// @Failure 500 {object} response.ErrorResponse "Storage failure"
// @Router /api/Email/uploadLabel [post]
func (h *EmailHandler) UploadLabel(c *gin.Context) {
	file, err := c.FormFile("labelImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	name := filepath.Base(file.Filename)
	contentType := file.Header.Get("Content-Type")
	if err := h.store.Save(c.Request.Context(), name, src, file.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Immagine caricata con successo: " + name})
}
