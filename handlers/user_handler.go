package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/dto"
	"github.com/winelabelmaker/winelabel-go/response"
	"github.com/winelabelmaker/winelabel-go/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary Register a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.RegisterDTO true "Account info"
// @Success 200 "Account created"
// @Failure 400 {object} response.ErrorResponse "Invalid input or email taken"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/AspNetUser/Register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if err := h.service.Register(input); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// Login godoc
// @Summary Issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} response.ErrorResponse "Unknown user"
// @Failure 401 {object} response.ErrorResponse "Wrong password"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/AspNetUser/Login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, token, expiration, err := h.service.Login(input.Username, input.Password)
	if err != nil {
		// unknown account is a 400, wrong password a 401
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unknown user"})
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponseDTO{
		Token:      token,
		Expiration: expiration,
		Role:       string(user.Role),
	})
}
