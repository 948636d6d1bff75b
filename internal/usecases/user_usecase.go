package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/domain/repositories"
	"parts-market.backend/pkg/crypto"
)

// UserUsecase handles user registration and lookup
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// CreateUser registers a new user. The email must be unique; the role is
// fixed at creation and never changes.
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("email already registered")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		UserType:     input.UserType,
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}
	if input.Address != "" {
		user.Address = null.StringFrom(input.Address)
	}
	if input.City != "" {
		user.City = null.StringFrom(input.City)
	}
	if input.State != "" {
		user.State = null.StringFrom(input.State)
	}
	if input.ZipCode != "" {
		user.ZipCode = null.StringFrom(input.ZipCode)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// GetUser returns a user by ID
func (u *UserUsecase) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ListUsers returns all users
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}
