package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/response"
	"github.com/winelabelmaker/winelabel-go/services"
	"github.com/winelabelmaker/winelabel-go/utils"
)

type MessageHandler struct {
	service  *services.MessageService
	requests *RequestHandler
}

func NewMessageHandler(service *services.MessageService, requests *RequestHandler) *MessageHandler {
	return &MessageHandler{service: service, requests: requests}
}

// GetMessages godoc
// @Summary List the message thread of a request
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Request ID"
// @Success 200 {array} dto.GetMessageDTO
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/Message/{requestId} [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	messages, err := h.service.ListMessages(c.Param("requestId"), claims)
	if err != nil {
		h.requests.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGetMessageDTOs(messages))
}

// CreateMessage godoc
// @Summary Post a message on a request thread
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Request ID"
// @Param input body dto.CreateMessageDTO true "Message text"
// @Success 200 {object} dto.GetMessageDTO
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/Message/{requestId} [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	message, err := h.service.CreateMessage(c.Param("requestId"), input, claims)
	if err != nil {
		h.requests.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGetMessageDTO(*message))
}
