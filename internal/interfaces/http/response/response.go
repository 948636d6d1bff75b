package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "parts-market.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP statuses
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrRoleMismatch):
		status = http.StatusBadRequest
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, gin.H{"error": msg})
}

// BadRequest sends a 400 with the binding/validation error message
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
