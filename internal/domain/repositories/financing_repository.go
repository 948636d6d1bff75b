package repositories

import (
	"context"

	"parts-market.backend/internal/domain/entities"
)

// FinancingOptionRepository defines loan product data operations
type FinancingOptionRepository interface {
	Create(ctx context.Context, option *entities.FinancingOption) error
	GetByID(ctx context.Context, id int64) (*entities.FinancingOption, error)
	ListActive(ctx context.Context) ([]*entities.FinancingOption, error)
}

// FinancingApplicationRepository defines financing application data operations
type FinancingApplicationRepository interface {
	Create(ctx context.Context, app *entities.FinancingApplication) error
	GetByID(ctx context.Context, id int64) (*entities.FinancingApplication, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.FinancingApplication, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*entities.FinancingApplication, error)
	UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatus) error
}
