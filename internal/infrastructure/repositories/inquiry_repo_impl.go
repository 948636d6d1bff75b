package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/infrastructure/models"
)

// InquiryRepository implements buyer inquiry data operations
type InquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create creates a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *entities.BuyerInquiry) error {
	m := &models.BuyerInquiry{
		BuyerID:  inquiry.BuyerID,
		SellerID: inquiry.SellerID,
		PartID:   inquiry.PartID,
		Message:  inquiry.Message,
		Status:   string(inquiry.Status),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	inquiry.ID = m.ID
	inquiry.CreatedAt = m.CreatedAt
	inquiry.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an inquiry by ID
func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*entities.BuyerInquiry, error) {
	var m models.BuyerInquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return inquiryToEntity(&m), nil
}

// ListByBuyer lists inquiries created by a buyer, newest first
func (r *InquiryRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

// ListBySeller lists inquiries addressed to a seller, newest first
func (r *InquiryRepository) ListBySeller(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error) {
	return r.list(ctx, "seller_id = ?", sellerID)
}

func (r *InquiryRepository) list(ctx context.Context, cond string, id int64) ([]*entities.BuyerInquiry, error) {
	var inquiryModels []models.BuyerInquiry
	err := r.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Find(&inquiryModels).Error
	if err != nil {
		return nil, err
	}

	inquiries := make([]*entities.BuyerInquiry, 0, len(inquiryModels))
	for i := range inquiryModels {
		inquiries = append(inquiries, inquiryToEntity(&inquiryModels[i]))
	}
	return inquiries, nil
}

// UpdateStatus sets a new status and stamps updated_at
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.BuyerInquiry{}).
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

func inquiryToEntity(m *models.BuyerInquiry) *entities.BuyerInquiry {
	return &entities.BuyerInquiry{
		ID:        m.ID,
		BuyerID:   m.BuyerID,
		SellerID:  m.SellerID,
		PartID:    m.PartID,
		Message:   m.Message,
		Status:    entities.InquiryStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
