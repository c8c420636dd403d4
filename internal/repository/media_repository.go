package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propfinder/internal/model"
)

// MediaRepository defines media upload persistence operations.
type MediaRepository interface {
	Create(ctx context.Context, media *model.MediaUpload) error
	ExistsByContentHash(ctx context.Context, contentHash string) (bool, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.MediaUpload, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *model.MediaUpload) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// ExistsByContentHash reports whether any upload already carries this hash.
func (r *mediaRepository) ExistsByContentHash(ctx context.Context, contentHash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MediaUpload{}).
		Where("content_hash = ?", contentHash).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mediaRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.MediaUpload, error) {
	var media []model.MediaUpload
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("uploaded_at ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}
