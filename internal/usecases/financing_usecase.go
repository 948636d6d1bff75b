package usecases

import (
	"context"
	"errors"
	"fmt"

	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/domain/repositories"
	"parts-market.backend/pkg/finance"
)

// FinancingUsecase handles loan products and financing applications
type FinancingUsecase struct {
	optionRepo repositories.FinancingOptionRepository
	appRepo    repositories.FinancingApplicationRepository
	partRepo   repositories.AutoPartRepository
	userRepo   repositories.UserRepository
}

// NewFinancingUsecase creates a new financing usecase
func NewFinancingUsecase(
	optionRepo repositories.FinancingOptionRepository,
	appRepo repositories.FinancingApplicationRepository,
	partRepo repositories.AutoPartRepository,
	userRepo repositories.UserRepository,
) *FinancingUsecase {
	return &FinancingUsecase{
		optionRepo: optionRepo,
		appRepo:    appRepo,
		partRepo:   partRepo,
		userRepo:   userRepo,
	}
}

// CreateOption creates a loan product. The provider must exist and hold the
// financing_provider role, mirroring the seller check on part creation.
func (u *FinancingUsecase) CreateOption(ctx context.Context, input *entities.CreateFinancingOptionInput) (*entities.FinancingOption, error) {
	provider, err := u.userRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("financing provider not found")
		}
		return nil, err
	}
	if provider.UserType != entities.UserTypeFinancingProvider {
		return nil, domainerrors.RoleMismatch("user is not a financing provider")
	}

	if input.MinAmount > input.MaxAmount {
		return nil, domainerrors.BadRequest("minAmount is greater than maxAmount")
	}

	option := &entities.FinancingOption{
		ProviderID:   input.ProviderID,
		Name:         input.Name,
		Description:  input.Description,
		MinAmount:    input.MinAmount,
		MaxAmount:    input.MaxAmount,
		InterestRate: input.InterestRate,
		TermMonths:   input.TermMonths,
	}
	if err := u.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// ListActiveOptions returns all active loan products
func (u *FinancingUsecase) ListActiveOptions(ctx context.Context) ([]*entities.FinancingOption, error) {
	return u.optionRepo.ListActive(ctx)
}

// EstimatePayment computes the display-only monthly payment for borrowing
// principal under an option's rate and term. Nothing is persisted.
func (u *FinancingUsecase) EstimatePayment(ctx context.Context, optionID int64, principal float64) (*entities.PaymentEstimate, error) {
	if principal <= 0 {
		return nil, domainerrors.BadRequest("amount must be positive")
	}

	option, err := u.optionRepo.GetByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("financing option not found")
		}
		return nil, err
	}

	return &entities.PaymentEstimate{
		FinancingOptionID: option.ID,
		Principal:         principal,
		InterestRate:      option.InterestRate,
		TermMonths:        option.TermMonths,
		MonthlyPayment:    finance.MonthlyPayment(principal, option.InterestRate, option.TermMonths),
	}, nil
}

// CreateApplication submits a financing application. The provider is resolved
// from the financing option server-side, the same derivation used for the
// inquiry seller; the application starts in the pending state. The
// application data payload is stored opaquely and round-tripped as-is.
func (u *FinancingUsecase) CreateApplication(ctx context.Context, input *entities.CreateFinancingApplicationInput) (*entities.FinancingApplication, error) {
	option, err := u.optionRepo.GetByID(ctx, input.FinancingOptionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("financing option not found")
		}
		return nil, err
	}

	app := &entities.FinancingApplication{
		BuyerID:           input.BuyerID,
		ProviderID:        option.ProviderID,
		PartID:            input.PartID,
		FinancingOptionID: input.FinancingOptionID,
		RequestedAmount:   input.RequestedAmount,
		Status:            entities.ApplicationStatusPending,
		ApplicationData:   input.ApplicationData,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications lists applications for a user by role column: buyers see
// what they submitted, providers see what was addressed to them.
func (u *FinancingUsecase) ListApplications(ctx context.Context, userID int64, role entities.UserType) ([]*entities.FinancingApplication, error) {
	switch role {
	case entities.UserTypeBuyer:
		return u.appRepo.ListByBuyer(ctx, userID)
	case entities.UserTypeFinancingProvider:
		return u.appRepo.ListByProvider(ctx, userID)
	default:
		return nil, domainerrors.BadRequest("role must be buyer or financing_provider")
	}
}

// UpdateApplicationStatus moves an application along its workflow. Only
// pending applications may move; approved, rejected and withdrawn are
// terminal.
func (u *FinancingUsecase) UpdateApplicationStatus(ctx context.Context, id int64, status entities.ApplicationStatus) (*entities.FinancingApplication, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("financing application with id %d not found", id))
		}
		return nil, err
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, domainerrors.InvalidTransition(
			fmt.Sprintf("application cannot move from %s to %s", app.Status, status))
	}

	if err := u.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.appRepo.GetByID(ctx, id)
}
