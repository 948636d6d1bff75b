package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/infrastructure/models"
	"parts-market.backend/pkg/utils"
)

// AutoPartRepository implements part listing data operations
type AutoPartRepository struct {
	db *gorm.DB
}

// NewAutoPartRepository creates a new auto part repository
func NewAutoPartRepository(db *gorm.DB) *AutoPartRepository {
	return &AutoPartRepository{db: db}
}

// Create creates a new part listing
func (r *AutoPartRepository) Create(ctx context.Context, part *entities.AutoPart) error {
	m := &models.AutoPart{
		SellerID:    part.SellerID,
		Title:       part.Title,
		Description: part.Description,
		Category:    string(part.Category),
		Condition:   string(part.Condition),
		Price:       utils.FormatAmount(part.Price),
		Make:        part.Make,
		Model:       part.Model,
		Year:        part.Year,
		PartNumber:  part.PartNumber.Ptr(),
		IsActive:    true,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	part.ID = m.ID
	part.Price = utils.MustParseAmount(m.Price)
	part.IsActive = m.IsActive
	part.CreatedAt = m.CreatedAt
	part.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a part by ID
func (r *AutoPartRepository) GetByID(ctx context.Context, id int64) (*entities.AutoPart, error) {
	var m models.AutoPart
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return partToEntity(&m), nil
}

// ListActive lists all active parts, newest first
func (r *AutoPartRepository) ListActive(ctx context.Context) ([]*entities.AutoPart, error) {
	var partModels []models.AutoPart
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&partModels).Error
	if err != nil {
		return nil, err
	}
	return partsToEntities(partModels), nil
}

// Search returns active parts matching every supplied predicate, newest
// first, with limit/offset pagination. Text predicates are case-insensitive
// substring matches; LOWER/LIKE and the numeric cast keep the query portable
// between postgres and the sqlite test database.
func (r *AutoPartRepository) Search(ctx context.Context, input *entities.SearchPartsInput) ([]*entities.AutoPart, error) {
	query := r.db.WithContext(ctx).Model(&models.AutoPart{}).Where("is_active = ?", true)

	if input.Query != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+input.Query+"%")
	}
	if input.Category != nil {
		query = query.Where("category = ?", string(*input.Category))
	}
	if input.Condition != nil {
		query = query.Where("condition = ?", string(*input.Condition))
	}
	if input.Make != "" {
		query = query.Where("LOWER(make) LIKE LOWER(?)", "%"+input.Make+"%")
	}
	if input.Model != "" {
		query = query.Where("LOWER(model) LIKE LOWER(?)", "%"+input.Model+"%")
	}
	if input.Year != nil {
		query = query.Where("year = ?", *input.Year)
	}
	if input.MinPrice != nil {
		query = query.Where("CAST(price AS NUMERIC) >= ?", *input.MinPrice)
	}
	if input.MaxPrice != nil {
		query = query.Where("CAST(price AS NUMERIC) <= ?", *input.MaxPrice)
	}

	limit, offset := utils.NormalizeListParams(input.Limit, input.Offset)

	var partModels []models.AutoPart
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&partModels).Error
	if err != nil {
		return nil, err
	}
	return partsToEntities(partModels), nil
}

// Update applies the supplied column updates and stamps updated_at
func (r *AutoPartRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.AutoPart{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func partToEntity(m *models.AutoPart) *entities.AutoPart {
	return &entities.AutoPart{
		ID:          m.ID,
		SellerID:    m.SellerID,
		Title:       m.Title,
		Description: m.Description,
		Category:    entities.PartCategory(m.Category),
		Condition:   entities.PartCondition(m.Condition),
		Price:       utils.MustParseAmount(m.Price),
		Make:        m.Make,
		Model:       m.Model,
		Year:        m.Year,
		PartNumber:  null.StringFromPtr(m.PartNumber),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func partsToEntities(partModels []models.AutoPart) []*entities.AutoPart {
	parts := make([]*entities.AutoPart, 0, len(partModels))
	for i := range partModels {
		parts = append(parts, partToEntity(&partModels[i]))
	}
	return parts
}
