package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/infrastructure/models"
	"parts-market.backend/pkg/utils"
)

// FinancingOptionRepository implements loan product data operations
type FinancingOptionRepository struct {
	db *gorm.DB
}

// NewFinancingOptionRepository creates a new financing option repository
func NewFinancingOptionRepository(db *gorm.DB) *FinancingOptionRepository {
	return &FinancingOptionRepository{db: db}
}

// Create creates a new financing option
func (r *FinancingOptionRepository) Create(ctx context.Context, option *entities.FinancingOption) error {
	m := &models.FinancingOption{
		ProviderID:   option.ProviderID,
		Name:         option.Name,
		Description:  option.Description,
		MinAmount:    utils.FormatAmount(option.MinAmount),
		MaxAmount:    utils.FormatAmount(option.MaxAmount),
		InterestRate: utils.FormatAmount(option.InterestRate),
		TermMonths:   option.TermMonths,
		IsActive:     true,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	option.ID = m.ID
	option.MinAmount = utils.MustParseAmount(m.MinAmount)
	option.MaxAmount = utils.MustParseAmount(m.MaxAmount)
	option.InterestRate = utils.MustParseAmount(m.InterestRate)
	option.IsActive = m.IsActive
	option.CreatedAt = m.CreatedAt
	option.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a financing option by ID
func (r *FinancingOptionRepository) GetByID(ctx context.Context, id int64) (*entities.FinancingOption, error) {
	var m models.FinancingOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return optionToEntity(&m), nil
}

// ListActive lists all active financing options, newest first
func (r *FinancingOptionRepository) ListActive(ctx context.Context) ([]*entities.FinancingOption, error) {
	var optionModels []models.FinancingOption
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&optionModels).Error
	if err != nil {
		return nil, err
	}

	options := make([]*entities.FinancingOption, 0, len(optionModels))
	for i := range optionModels {
		options = append(options, optionToEntity(&optionModels[i]))
	}
	return options, nil
}

func optionToEntity(m *models.FinancingOption) *entities.FinancingOption {
	return &entities.FinancingOption{
		ID:           m.ID,
		ProviderID:   m.ProviderID,
		Name:         m.Name,
		Description:  m.Description,
		MinAmount:    utils.MustParseAmount(m.MinAmount),
		MaxAmount:    utils.MustParseAmount(m.MaxAmount),
		InterestRate: utils.MustParseAmount(m.InterestRate),
		TermMonths:   m.TermMonths,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
