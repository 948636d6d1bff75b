package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/interfaces/http/response"
	"parts-market.backend/internal/usecases"
	"parts-market.backend/pkg/redis"
)

// SessionHandler handles the simulated current-user selector. This stands in
// for real authentication: a session picks a user, it does not prove one.
type SessionHandler struct {
	userUsecase      *usecases.UserUsecase
	currentUserStore *redis.CurrentUserStore
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(userUsecase *usecases.UserUsecase, currentUserStore *redis.CurrentUserStore) *SessionHandler {
	return &SessionHandler{
		userUsecase:      userUsecase,
		currentUserStore: currentUserStore,
	}
}

// SetCurrentUser selects the current user for the session in X-Session-ID
// PUT /api/v1/session/current-user
func (h *SessionHandler) SetCurrentUser(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		response.Error(c, domainerrors.BadRequest("X-Session-ID header is required"))
		return
	}

	var input entities.SetCurrentUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), input.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.currentUserStore.SetCurrentUser(c.Request.Context(), sessionID, user.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetCurrentUser returns the user selected for the session in X-Session-ID
// GET /api/v1/session/current-user
func (h *SessionHandler) GetCurrentUser(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		response.Error(c, domainerrors.BadRequest("X-Session-ID header is required"))
		return
	}

	userID, err := h.currentUserStore.GetCurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrNoCurrentUser) {
			response.Error(c, domainerrors.NotFound("no current user selected"))
			return
		}
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
