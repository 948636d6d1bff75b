package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// UserType represents the fixed role a user is created with
type UserType string

const (
	UserTypeBuyer             UserType = "buyer"
	UserTypeSeller            UserType = "seller"
	UserTypeFinancingProvider UserType = "financing_provider"
)

// User represents a marketplace participant
type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	UserType     UserType    `json:"userType"`
	Phone        null.String `json:"phone,omitempty"`
	Address      null.String `json:"address,omitempty"`
	City         null.String `json:"city,omitempty"`
	State        null.String `json:"state,omitempty"`
	ZipCode      null.String `json:"zipCode,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CreateUserInput represents input for registering a user
type CreateUserInput struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	FirstName string   `json:"firstName" binding:"required,min=1"`
	LastName  string   `json:"lastName" binding:"required,min=1"`
	UserType  UserType `json:"userType" binding:"required,oneof=buyer seller financing_provider"`
	Phone     string   `json:"phone,omitempty"`
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zipCode,omitempty"`
}

// SetCurrentUserInput selects the simulated current user for a session
type SetCurrentUserInput struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
}
