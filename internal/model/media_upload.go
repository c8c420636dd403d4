package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Media file types as stored in media_uploads.file_type.
const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// MediaUpload represents a file attached to a property listing. A second
// upload of the same bytes is still recorded, marked unoriginal, and earns
// nothing, so the content hash is indexed but deliberately not unique.
// IsOriginal and TokensEarned are always set explicitly by the upload flow;
// a Go-side default on IsOriginal would silently replace false with true.
type MediaUpload struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PropertyID   uuid.UUID `json:"property_id" gorm:"type:char(36);not null;index"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	FilePath     string    `json:"file_path" gorm:"size:512;not null"`
	FileType     string    `json:"file_type" gorm:"size:20;not null"`
	ContentHash  string    `json:"content_hash" gorm:"index;size:64;not null"`
	FileSize     int64     `json:"file_size" gorm:"not null"`
	IsOriginal   bool      `json:"is_original"`
	TokensEarned int64     `json:"tokens_earned"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`

	// Relations
	Property Property `json:"-" gorm:"foreignKey:PropertyID"`
	Uploader User     `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MediaUpload) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
