package repositories

import (
	"context"

	"parts-market.backend/internal/domain/entities"
)

// InquiryRepository defines buyer inquiry data operations
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entities.BuyerInquiry) error
	GetByID(ctx context.Context, id int64) (*entities.BuyerInquiry, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error)
	UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error
}
