package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/infrastructure/models"
	"parts-market.backend/pkg/utils"
)

// FinancingApplicationRepository implements financing application data operations
type FinancingApplicationRepository struct {
	db *gorm.DB
}

// NewFinancingApplicationRepository creates a new financing application repository
func NewFinancingApplicationRepository(db *gorm.DB) *FinancingApplicationRepository {
	return &FinancingApplicationRepository{db: db}
}

// Create creates a new financing application
func (r *FinancingApplicationRepository) Create(ctx context.Context, app *entities.FinancingApplication) error {
	m := &models.FinancingApplication{
		BuyerID:           app.BuyerID,
		ProviderID:        app.ProviderID,
		PartID:            app.PartID,
		FinancingOptionID: app.FinancingOptionID,
		RequestedAmount:   utils.FormatAmount(app.RequestedAmount),
		Status:            string(app.Status),
		ApplicationData:   app.ApplicationData,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	app.ID = m.ID
	app.RequestedAmount = utils.MustParseAmount(m.RequestedAmount)
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a financing application by ID
func (r *FinancingApplicationRepository) GetByID(ctx context.Context, id int64) (*entities.FinancingApplication, error) {
	var m models.FinancingApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return applicationToEntity(&m), nil
}

// ListByBuyer lists applications submitted by a buyer, newest first
func (r *FinancingApplicationRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.FinancingApplication, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

// ListByProvider lists applications addressed to a provider, newest first
func (r *FinancingApplicationRepository) ListByProvider(ctx context.Context, providerID int64) ([]*entities.FinancingApplication, error) {
	return r.list(ctx, "provider_id = ?", providerID)
}

func (r *FinancingApplicationRepository) list(ctx context.Context, cond string, id int64) ([]*entities.FinancingApplication, error) {
	var appModels []models.FinancingApplication
	err := r.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Find(&appModels).Error
	if err != nil {
		return nil, err
	}

	apps := make([]*entities.FinancingApplication, 0, len(appModels))
	for i := range appModels {
		apps = append(apps, applicationToEntity(&appModels[i]))
	}
	return apps, nil
}

// UpdateStatus sets a new status and stamps updated_at
func (r *FinancingApplicationRepository) UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.FinancingApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func applicationToEntity(m *models.FinancingApplication) *entities.FinancingApplication {
	return &entities.FinancingApplication{
		ID:                m.ID,
		BuyerID:           m.BuyerID,
		ProviderID:        m.ProviderID,
		PartID:            m.PartID,
		FinancingOptionID: m.FinancingOptionID,
		RequestedAmount:   utils.MustParseAmount(m.RequestedAmount),
		Status:            entities.ApplicationStatus(m.Status),
		ApplicationData:   m.ApplicationData,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
