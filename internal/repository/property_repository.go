package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propfinder/internal/model"
)

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Search(ctx context.Context, query string) ([]model.Property, error)
	UpdateImages(ctx context.Context, id uuid.UUID, thumb, large string) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// List returns every property, newest first.
func (r *propertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Search matches the query case-insensitively against title, location and
// description, newest first.
func (r *propertyRepository) Search(ctx context.Context, query string) ([]model.Property, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var properties []model.Property
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// UpdateImages fills in the image references once media has been stored.
func (r *propertyRepository) UpdateImages(ctx context.Context, id uuid.UUID, thumb, large string) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"image_thumb_webp": thumb,
			"image_large_webp": large,
		}).Error
}
