package repositories

import (
	"context"

	"gorm.io/gorm"
	"parts-market.backend/internal/domain/entities"
	"parts-market.backend/internal/infrastructure/models"
)

// PartImageRepository implements part image data operations
type PartImageRepository struct {
	db *gorm.DB
}

// NewPartImageRepository creates a new part image repository
func NewPartImageRepository(db *gorm.DB) *PartImageRepository {
	return &PartImageRepository{db: db}
}

// Create attaches an image to a part
func (r *PartImageRepository) Create(ctx context.Context, image *entities.PartImage) error {
	m := &models.PartImage{
		PartID:    image.PartID,
		ImageURL:  image.ImageURL,
		IsPrimary: image.IsPrimary,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	image.ID = m.ID
	image.CreatedAt = m.CreatedAt
	return nil
}

// ListByPart lists images for a part, primary first
func (r *PartImageRepository) ListByPart(ctx context.Context, partID int64) ([]*entities.PartImage, error) {
	var imageModels []models.PartImage
	err := r.db.WithContext(ctx).
		Where("part_id = ?", partID).
		Order("is_primary DESC, created_at ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, err
	}

	images := make([]*entities.PartImage, 0, len(imageModels))
	for i := range imageModels {
		m := &imageModels[i]
		images = append(images, &entities.PartImage{
			ID:        m.ID,
			PartID:    m.PartID,
			ImageURL:  m.ImageURL,
			IsPrimary: m.IsPrimary,
			CreatedAt: m.CreatedAt,
		})
	}
	return images, nil
}
