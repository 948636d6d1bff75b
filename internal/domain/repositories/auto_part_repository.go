package repositories

import (
	"context"

	"parts-market.backend/internal/domain/entities"
)

// AutoPartRepository defines part listing data operations
type AutoPartRepository interface {
	Create(ctx context.Context, part *entities.AutoPart) error
	GetByID(ctx context.Context, id int64) (*entities.AutoPart, error)
	ListActive(ctx context.Context) ([]*entities.AutoPart, error)
	Search(ctx context.Context, input *entities.SearchPartsInput) ([]*entities.AutoPart, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
}

// PartImageRepository defines part image data operations
type PartImageRepository interface {
	Create(ctx context.Context, image *entities.PartImage) error
	ListByPart(ctx context.Context, partID int64) ([]*entities.PartImage, error)
}
