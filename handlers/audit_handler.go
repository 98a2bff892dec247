package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/response"
	"github.com/winelabelmaker/winelabel-go/services"
)

type AuditHandler struct {
	service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Description Admin only. All filters are optional; results come back
// @Description newest first.
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param userId query string false "Filter by acting user"
// @Param resourceType query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param startTime query string false "RFC3339 lower bound"
// @Param endTime query string false "RFC3339 upper bound"
// @Param limit query int false "Max rows"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} response.ErrorResponse "Bad filter value"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/Audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repositories.AuditQueryParams

	if v := c.Query("userId"); v != "" {
		params.UserID = &v
	}
	if v := c.Query("resourceType"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("startTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid startTime"})
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("endTime"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid endTime"})
			return
		}
		params.EndTime = &t
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid limit"})
			return
		}
		params.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid offset"})
			return
		}
		params.Offset = n
	}

	logs, err := h.service.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
