package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property represents a real-estate listing. Rows are immutable after
// creation except for the image references, which are filled in from the
// first image attached during upload.
type Property struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string          `json:"title" gorm:"size:255;not null;index"`
	Location       string          `json:"location" gorm:"size:255;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Description    string          `json:"description" gorm:"type:text"`
	ImageThumbWebp string          `json:"image_thumb_webp" gorm:"size:512"`
	ImageLargeWebp string          `json:"image_large_webp" gorm:"size:512"`
	Bedrooms       *int            `json:"bedrooms"`
	Bathrooms      *int            `json:"bathrooms"`
	AreaSqm        *float64        `json:"area_sqm"`
	UserID         *uuid.UUID      `json:"user_id" gorm:"type:char(36);index"`
	ContentHash    string          `json:"content_hash,omitempty" gorm:"size:64"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relations
	Owner *User         `json:"-" gorm:"foreignKey:UserID"`
	Media []MediaUpload `json:"-" gorm:"foreignKey:PropertyID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
