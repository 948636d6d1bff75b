package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	domainerrors "parts-market.backend/internal/domain/errors"
)

func run(t *testing.T, fn func(c *gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestSuccess(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"id": 1})
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestErrorAppError(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		Error(c, domainerrors.NotFound("part not found"))
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "part not found", errorBody(t, w))
}

func TestErrorSentinelMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
		{domainerrors.ErrInvalidTransition, http.StatusConflict},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{domainerrors.ErrRoleMismatch, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := run(t, func(c *gin.Context) { Error(c, tc.err) })
		require.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestErrorUnknownIsOpaque500(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		Error(c, errors.New("password for db is hunter2"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", errorBody(t, w), "internals never leak to clients")
}

func TestBadRequest(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		BadRequest(c, errors.New("field X is required"))
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "field X is required", errorBody(t, w))
}
