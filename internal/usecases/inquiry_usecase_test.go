package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
)

func TestInquiryUsecase_CreateInquiryDerivesSeller(t *testing.T) {
	partRepo := &stubPartRepo{
		getByIDFn: func(ctx context.Context, id int64) (*entities.AutoPart, error) {
			return &entities.AutoPart{ID: id, SellerID: 42}, nil
		},
	}
	inquiryRepo := &stubInquiryRepo{
		createFn: func(ctx context.Context, inquiry *entities.BuyerInquiry) error {
			inquiry.ID = 1
			return nil
		},
	}
	u := NewInquiryUsecase(inquiryRepo, partRepo)

	inquiry, err := u.CreateInquiry(context.Background(), &entities.CreateBuyerInquiryInput{
		BuyerID: 10, PartID: 30, Message: "Still available?",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), inquiry.SellerID, "seller comes from the part, not the caller")
	require.Equal(t, entities.InquiryStatusPending, inquiry.Status)
}

func TestInquiryUsecase_CreateInquiryPartMissing(t *testing.T) {
	u := NewInquiryUsecase(&stubInquiryRepo{}, &stubPartRepo{})

	_, err := u.CreateInquiry(context.Background(), &entities.CreateBuyerInquiryInput{
		BuyerID: 10, PartID: 9999, Message: "m",
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInquiryUsecase_UpdateInquiryStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    entities.InquiryStatus
		to      entities.InquiryStatus
		allowed bool
	}{
		{"pending to responded", entities.InquiryStatusPending, entities.InquiryStatusResponded, true},
		{"pending to closed", entities.InquiryStatusPending, entities.InquiryStatusClosed, true},
		{"responded to closed", entities.InquiryStatusResponded, entities.InquiryStatusClosed, true},
		{"responded back to pending", entities.InquiryStatusResponded, entities.InquiryStatusPending, false},
		{"closed to responded", entities.InquiryStatusClosed, entities.InquiryStatusResponded, false},
		{"closed to pending", entities.InquiryStatusClosed, entities.InquiryStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := tc.from
			inquiryRepo := &stubInquiryRepo{
				getByIDFn: func(ctx context.Context, id int64) (*entities.BuyerInquiry, error) {
					return &entities.BuyerInquiry{ID: id, Status: current}, nil
				},
				updateStatusFn: func(ctx context.Context, id int64, status entities.InquiryStatus) error {
					current = status
					return nil
				},
			}
			u := NewInquiryUsecase(inquiryRepo, &stubPartRepo{})

			inquiry, err := u.UpdateInquiryStatus(context.Background(), 1, tc.to)
			if tc.allowed {
				require.NoError(t, err)
				require.Equal(t, tc.to, inquiry.Status)
			} else {
				require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
				require.Equal(t, tc.from, current, "state must not move on a rejected transition")
			}
		})
	}
}

func TestInquiryUsecase_UpdateInquiryStatusNotFound(t *testing.T) {
	u := NewInquiryUsecase(&stubInquiryRepo{}, &stubPartRepo{})

	_, err := u.UpdateInquiryStatus(context.Background(), 9999, entities.InquiryStatusClosed)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInquiryUsecase_Listing(t *testing.T) {
	inquiryRepo := &stubInquiryRepo{
		listByBuyerFn: func(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error) {
			return []*entities.BuyerInquiry{{BuyerID: buyerID}}, nil
		},
		listBySellerFn: func(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error) {
			return []*entities.BuyerInquiry{{SellerID: sellerID}, {SellerID: sellerID}}, nil
		},
	}
	u := NewInquiryUsecase(inquiryRepo, &stubPartRepo{})

	byBuyer, err := u.ListBuyerInquiries(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, byBuyer, 1)

	bySeller, err := u.ListSellerInquiries(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, bySeller, 2)
}
