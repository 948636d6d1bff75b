package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"parts-market.backend/internal/domain/entities"
)

func TestUserHandler_CreateUser(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "buyer@example.com",
		"password":  "password123",
		"firstName": "Pat",
		"lastName":  "Lee",
		"userType":  "buyer",
		"city":      "Austin",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	require.Equal(t, "buyer@example.com", body["email"])
	require.Equal(t, "buyer", body["userType"])
	require.NotContains(t, body, "passwordHash", "hash never leaves the server")
	require.NotContains(t, body, "password")
}

func TestUserHandler_CreateUserDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	createTestUser(t, r, "dup@example.com", entities.UserTypeBuyer)

	w := doRequest(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"email":     "dup@example.com",
		"password":  "password123",
		"firstName": "Other",
		"lastName":  "Person",
		"userType":  "seller",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, decodeBody(t, w)["error"], "already registered")
}

func TestUserHandler_CreateUserValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "password123", "firstName": "A", "lastName": "B", "userType": "buyer"}},
		{"malformed email", gin.H{"email": "not-an-email", "password": "password123", "firstName": "A", "lastName": "B", "userType": "buyer"}},
		{"short password", gin.H{"email": "a@example.com", "password": "short", "firstName": "A", "lastName": "B", "userType": "buyer"}},
		{"unknown role", gin.H{"email": "a@example.com", "password": "password123", "firstName": "A", "lastName": "B", "userType": "admin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/v1/users", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	r := newTestRouter(t)
	createTestUser(t, r, "a@example.com", entities.UserTypeBuyer)
	createTestUser(t, r, "b@example.com", entities.UserTypeSeller)

	w := doRequest(t, r, http.MethodGet, "/api/v1/users", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeList(t, w), 2)
}
