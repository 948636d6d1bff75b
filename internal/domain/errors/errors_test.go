package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatusAndSentinel(t *testing.T) {
	cases := []struct {
		err      *AppError
		code     int
		sentinel error
	}{
		{NotFound("missing"), http.StatusNotFound, ErrNotFound},
		{BadRequest("bad"), http.StatusBadRequest, ErrInvalidInput},
		{Conflict("dup"), http.StatusConflict, ErrAlreadyExists},
		{RoleMismatch("role"), http.StatusBadRequest, ErrRoleMismatch},
		{InvalidTransition("stuck"), http.StatusConflict, ErrInvalidTransition},
	}

	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.Code)
		require.ErrorIs(t, tc.err, tc.sentinel)
	}
}

func TestAppErrorMessage(t *testing.T) {
	e := NotFound("part not found")
	require.Equal(t, "part not found", e.Message)
	require.Equal(t, ErrNotFound.Error(), e.Error(), "Error() surfaces the wrapped cause")

	bare := &AppError{Code: http.StatusTeapot, Message: "just a message"}
	require.Equal(t, "just a message", bare.Error())
	require.Nil(t, bare.Unwrap())
}

func TestInternalError(t *testing.T) {
	cause := errors.New("db down")
	e := InternalError(cause)
	require.Equal(t, http.StatusInternalServerError, e.Code)
	require.ErrorIs(t, e, cause)
	require.Equal(t, "internal server error", e.Message)
}
