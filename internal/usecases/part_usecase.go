package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"parts-market.backend/internal/domain/entities"
	domainerrors "parts-market.backend/internal/domain/errors"
	"parts-market.backend/internal/domain/repositories"
	"parts-market.backend/pkg/utils"
)

// PartUsecase handles part listing business logic
type PartUsecase struct {
	partRepo  repositories.AutoPartRepository
	imageRepo repositories.PartImageRepository
	userRepo  repositories.UserRepository
}

// NewPartUsecase creates a new part usecase
func NewPartUsecase(
	partRepo repositories.AutoPartRepository,
	imageRepo repositories.PartImageRepository,
	userRepo repositories.UserRepository,
) *PartUsecase {
	return &PartUsecase{
		partRepo:  partRepo,
		imageRepo: imageRepo,
		userRepo:  userRepo,
	}
}

// CreatePart lists a part for sale. The referenced user must exist and hold
// the seller role; this is the only place the role is enforced, there is no
// database constraint behind it.
func (u *PartUsecase) CreatePart(ctx context.Context, input *entities.CreateAutoPartInput) (*entities.AutoPart, error) {
	seller, err := u.userRepo.GetByID(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("seller not found")
		}
		return nil, err
	}
	if seller.UserType != entities.UserTypeSeller {
		return nil, domainerrors.RoleMismatch("user is not a seller")
	}

	if input.Year > time.Now().Year()+1 {
		return nil, domainerrors.BadRequest("year is in the future")
	}

	part := &entities.AutoPart{
		SellerID:    input.SellerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Condition:   input.Condition,
		Price:       input.Price,
		Make:        input.Make,
		Model:       input.Model,
		Year:        input.Year,
		PartNumber:  null.StringFromPtr(input.PartNumber),
	}

	if err := u.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// ListActiveParts returns all active listings
func (u *PartUsecase) ListActiveParts(ctx context.Context) ([]*entities.AutoPart, error) {
	return u.partRepo.ListActive(ctx)
}

// SearchParts returns active listings matching every supplied predicate
func (u *PartUsecase) SearchParts(ctx context.Context, input *entities.SearchPartsInput) ([]*entities.AutoPart, error) {
	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		return nil, domainerrors.BadRequest("minPrice is greater than maxPrice")
	}
	return u.partRepo.Search(ctx, input)
}

// UpdatePart applies a sparse update: nil fields keep their stored values,
// and the modification timestamp moves forward.
func (u *PartUsecase) UpdatePart(ctx context.Context, id int64, input *entities.UpdateAutoPartInput) (*entities.AutoPart, error) {
	if _, err := u.partRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("auto part not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = string(*input.Category)
	}
	if input.Condition != nil {
		updates["condition"] = string(*input.Condition)
	}
	if input.Price != nil {
		updates["price"] = utils.FormatAmount(*input.Price)
	}
	if input.PartNumber != nil {
		updates["part_number"] = *input.PartNumber
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := u.partRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return u.partRepo.GetByID(ctx, id)
}

// CreatePartImage attaches an image URL to an existing part
func (u *PartUsecase) CreatePartImage(ctx context.Context, partID int64, input *entities.CreatePartImageInput) (*entities.PartImage, error) {
	if _, err := u.partRepo.GetByID(ctx, partID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("auto part not found")
		}
		return nil, err
	}

	image := &entities.PartImage{
		PartID:    partID,
		ImageURL:  input.ImageURL,
		IsPrimary: input.IsPrimary,
	}
	if err := u.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// ListPartImages lists the images attached to a part
func (u *PartUsecase) ListPartImages(ctx context.Context, partID int64) ([]*entities.PartImage, error) {
	return u.imageRepo.ListByPart(ctx, partID)
}
