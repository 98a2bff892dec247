package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/response"
	"github.com/winelabelmaker/winelabel-go/services"
	"github.com/winelabelmaker/winelabel-go/utils"
)

type RequestHandler struct {
	service *services.RequestService
	audit   repositories.AuditRepo
}

func NewRequestHandler(service *services.RequestService, audit repositories.AuditRepo) *RequestHandler {
	return &RequestHandler{service: service, audit: audit}
}

// GetAllRequests godoc
// @Summary List label requests visible to the caller
// @Description Admins see every request, customers only their own.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GetRequestDTO
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/Request/allRequest [get]
func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	requests, err := h.service.ListRequests(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToGetRequestDTOs(requests))
}

// GetRequestByID godoc
// @Summary Fetch a single label request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} dto.GetRequestDTO
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/Request/requestById/{id} [get]
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	request, err := h.service.GetRequest(c.Param("id"), claims)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGetRequestDTO(*request))
}

// CreateRequest godoc
// @Summary Open a new label request
// @Description Creates a request in Pending owned by the calling customer.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateRequestDTO true "Request description"
// @Success 200 {object} dto.GetRequestDTO
// @Failure 400 {object} response.ErrorResponse "Invalid description"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Customers only"
// @Router /api/Request/createRequest [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	request, err := h.service.CreateRequest(input.Description, claims)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.LogAudit(c, "CREATE", "Request", request.ID, nil, request, "Label request opened", h.audit)

	c.JSON(http.StatusOK, dto.ToGetRequestDTO(*request))
}

// UpdateClient godoc
// @Summary Edit the description of an owned request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param input body dto.UpdateRequestDescriptionDTO true "New description"
// @Success 200 {object} dto.GetRequestDTO
// @Failure 400 {object} response.ErrorResponse "Invalid description"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/Request/updateClient/{id} [put]
func (h *RequestHandler) UpdateClient(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.UpdateRequestDescriptionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	id := c.Param("id")
	before, _ := h.service.GetRequest(id, claims)

	request, err := h.service.UpdateDescription(id, input.Description, claims)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.LogAudit(c, "UPDATE", "Request", request.ID, before, request, "Description edited by owner", h.audit)

	c.JSON(http.StatusOK, dto.ToGetRequestDTO(*request))
}

// UpdateAdmin godoc
// @Summary Set the workflow status of a request
// @Description Admin action. Persists the new status and fires the
// @Description best-effort customer notification for it.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param input body dto.UpdateRequestStatusDTO true "New status"
// @Success 200 {object} dto.GetRequestDTO
// @Failure 400 {object} response.ErrorResponse "Unknown status"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /api/Request/updateAdmin/{id} [put]
func (h *RequestHandler) UpdateAdmin(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.UpdateRequestStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	id := c.Param("id")
	before, _ := h.service.GetRequest(id, claims)

	request, err := h.service.UpdateStatus(id, input.Status, claims)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.LogAudit(c, "UPDATE_STATUS", "Request", request.ID, before, request, "Status set to "+string(request.Status), h.audit)

	c.JSON(http.StatusOK, dto.ToGetRequestDTO(*request))
}

// DeleteRequest godoc
// @Summary Permanently delete a request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 500 {object} response.ErrorResponse "Delete refused by storage"
// @Router /api/Request/deleteRequest/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	before, _ := h.service.GetRequest(id, claims)

	if err := h.service.DeleteRequest(id, claims); err != nil {
		h.respondError(c, err)
		return
	}

	utils.LogAudit(c, "DELETE", "Request", id, before, nil, "Request deleted", h.audit)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Request deleted"})
}

// SearchRequests godoc
// @Summary Search requests by owner name
// @Description Admin only. Case-insensitive substring match against the
// @Description owner's name and surname. A blank term returns an empty list.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param term path string true "Search term"
// @Success 200 {array} dto.GetRequestDTO
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /api/Request/searchRequest/{term} [get]
func (h *RequestHandler) SearchRequests(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	requests, err := h.service.SearchRequests(c.Param("term"), claims)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGetRequestDTOs(requests))
}

func (h *RequestHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidDescription), errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
