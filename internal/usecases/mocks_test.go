package usecases

import (
	"context"

	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
)

// Function-field stubs for the repository interfaces. Unset getters report
// not found, unset writers succeed.

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByIDFn    func(ctx context.Context, id int64) (*entities.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	listFn       func(ctx context.Context) ([]*entities.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type stubPartRepo struct {
	createFn     func(ctx context.Context, part *entities.AutoPart) error
	getByIDFn    func(ctx context.Context, id int64) (*entities.AutoPart, error)
	listActiveFn func(ctx context.Context) ([]*entities.AutoPart, error)
	searchFn     func(ctx context.Context, input *entities.SearchPartsInput) ([]*entities.AutoPart, error)
	updateFn     func(ctx context.Context, id int64, updates map[string]interface{}) error
}

func (s *stubPartRepo) Create(ctx context.Context, part *entities.AutoPart) error {
	if s.createFn != nil {
		return s.createFn(ctx, part)
	}
	return nil
}

func (s *stubPartRepo) GetByID(ctx context.Context, id int64) (*entities.AutoPart, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubPartRepo) ListActive(ctx context.Context) ([]*entities.AutoPart, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx)
	}
	return nil, nil
}

func (s *stubPartRepo) Search(ctx context.Context, input *entities.SearchPartsInput) ([]*entities.AutoPart, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, input)
	}
	return nil, nil
}

func (s *stubPartRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, updates)
	}
	return nil
}

type stubImageRepo struct {
	createFn     func(ctx context.Context, image *entities.PartImage) error
	listByPartFn func(ctx context.Context, partID int64) ([]*entities.PartImage, error)
}

func (s *stubImageRepo) Create(ctx context.Context, image *entities.PartImage) error {
	if s.createFn != nil {
		return s.createFn(ctx, image)
	}
	return nil
}

func (s *stubImageRepo) ListByPart(ctx context.Context, partID int64) ([]*entities.PartImage, error) {
	if s.listByPartFn != nil {
		return s.listByPartFn(ctx, partID)
	}
	return nil, nil
}

type stubInquiryRepo struct {
	createFn       func(ctx context.Context, inquiry *entities.BuyerInquiry) error
	getByIDFn      func(ctx context.Context, id int64) (*entities.BuyerInquiry, error)
	listByBuyerFn  func(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error)
	listBySellerFn func(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error)
	updateStatusFn func(ctx context.Context, id int64, status entities.InquiryStatus) error
}

func (s *stubInquiryRepo) Create(ctx context.Context, inquiry *entities.BuyerInquiry) error {
	if s.createFn != nil {
		return s.createFn(ctx, inquiry)
	}
	return nil
}

func (s *stubInquiryRepo) GetByID(ctx context.Context, id int64) (*entities.BuyerInquiry, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubInquiryRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.BuyerInquiry, error) {
	if s.listByBuyerFn != nil {
		return s.listByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

func (s *stubInquiryRepo) ListBySeller(ctx context.Context, sellerID int64) ([]*entities.BuyerInquiry, error) {
	if s.listBySellerFn != nil {
		return s.listBySellerFn(ctx, sellerID)
	}
	return nil, nil
}

func (s *stubInquiryRepo) UpdateStatus(ctx context.Context, id int64, status entities.InquiryStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}

type stubOptionRepo struct {
	createFn     func(ctx context.Context, option *entities.FinancingOption) error
	getByIDFn    func(ctx context.Context, id int64) (*entities.FinancingOption, error)
	listActiveFn func(ctx context.Context) ([]*entities.FinancingOption, error)
}

func (s *stubOptionRepo) Create(ctx context.Context, option *entities.FinancingOption) error {
	if s.createFn != nil {
		return s.createFn(ctx, option)
	}
	return nil
}

func (s *stubOptionRepo) GetByID(ctx context.Context, id int64) (*entities.FinancingOption, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubOptionRepo) ListActive(ctx context.Context) ([]*entities.FinancingOption, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx)
	}
	return nil, nil
}

type stubApplicationRepo struct {
	createFn         func(ctx context.Context, app *entities.FinancingApplication) error
	getByIDFn        func(ctx context.Context, id int64) (*entities.FinancingApplication, error)
	listByBuyerFn    func(ctx context.Context, buyerID int64) ([]*entities.FinancingApplication, error)
	listByProviderFn func(ctx context.Context, providerID int64) ([]*entities.FinancingApplication, error)
	updateStatusFn   func(ctx context.Context, id int64, status entities.ApplicationStatus) error
}

func (s *stubApplicationRepo) Create(ctx context.Context, app *entities.FinancingApplication) error {
	if s.createFn != nil {
		return s.createFn(ctx, app)
	}
	return nil
}

func (s *stubApplicationRepo) GetByID(ctx context.Context, id int64) (*entities.FinancingApplication, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubApplicationRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]*entities.FinancingApplication, error) {
	if s.listByBuyerFn != nil {
		return s.listByBuyerFn(ctx, buyerID)
	}
	return nil, nil
}

func (s *stubApplicationRepo) ListByProvider(ctx context.Context, providerID int64) ([]*entities.FinancingApplication, error) {
	if s.listByProviderFn != nil {
		return s.listByProviderFn(ctx, providerID)
	}
	return nil, nil
}

func (s *stubApplicationRepo) UpdateStatus(ctx context.Context, id int64, status entities.ApplicationStatus) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, status)
	}
	return nil
}
