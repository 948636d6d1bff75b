package usecases

import (
	"context"
	"errors"
	"fmt"

	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/domain/repositories"
)

// InquiryUsecase handles buyer inquiry business logic
type InquiryUsecase struct {
	inquiryRepo repositories.InquiryRepository
	partRepo    repositories.AutoPartRepository
}

// NewInquiryUsecase creates a new inquiry usecase
func NewInquiryUsecase(
	inquiryRepo repositories.InquiryRepository,
	partRepo repositories.AutoPartRepository,
) *InquiryUsecase {
	return &InquiryUsecase{
		inquiryRepo: inquiryRepo,
		partRepo:    partRepo,
	}
}

// CreateInquiry creates an inquiry against a part. The seller is resolved
// from the part server-side so the recorded counterparty can never be spoofed
// by the caller; the inquiry starts in the pending state.
func (u *InquiryUsecase) CreateInquiry(ctx context.Context, input *entities.CreateBuyerInquiryInput) (*entities.BuyerInquiry, error) {
	part, err := u.partRepo.GetByID(ctx, input.PartID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("auto part with id %d not found", input.PartID))
		}
		return nil, err
	}

	inquiry := &entities.BuyerInquiry{
		BuyerID:  input.BuyerID,
		SellerID: part.SellerID,
		PartID:   input.PartID,
		Message:  input.Message,
		Status:   entities.InquiryStatusPending,
	}
	if err := u.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// ListBuyerInquiries lists inquiries created by a buyer
func (u *InquiryUsecase) ListBuyerInquiries(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error) {
	return u.inquiryRepo.ListByBuyer(ctx, buyerID)
}

// ListSellerInquiries lists inquiries addressed to a seller
func (u *InquiryUsecase) ListSellerInquiries(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error) {
	return u.inquiryRepo.ListBySeller(ctx, sellerID)
}

// UpdateInquiryStatus moves an inquiry along its workflow. Transitions
// outside the graph (pending→responded|closed, responded→closed) are
// rejected.
func (u *InquiryUsecase) UpdateInquiryStatus(ctx context.Context, id int64, status entities.InquiryStatus) (*entities.BuyerInquiry, error) {
	inquiry, err := u.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("inquiry with id %d not found", id))
		}
		return nil, err
	}

	if !inquiry.Status.CanTransitionTo(status) {
		return nil, domainerrors.InvalidTransition(
			fmt.Sprintf("inquiry cannot move from %s to %s", inquiry.Status, status))
	}

	if err := u.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.inquiryRepo.GetByID(ctx, id)
}
