package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"parts-market.backend/internal/domain/entities"
	"parts-market.backend/internal/interfaces/http/response"
	"parts-market.backend/internal/usecases"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser registers a new user
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// ListUsers lists all users
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}
