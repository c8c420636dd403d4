package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"propfinder/internal/cache"
	"propfinder/internal/errors"
	"propfinder/internal/model"
	"propfinder/internal/repository"
	"propfinder/internal/storage"
)

// OriginalUploadTokens is the reward credited per original (first-seen) file.
const OriginalUploadTokens = 100

// UploadInput carries the listing fields of a property upload.
type UploadInput struct {
	UserID      uuid.UUID
	Title       string
	Location    string
	Price       decimal.Decimal
	Description string
	Bedrooms    *int
	Bathrooms   *int
	AreaSqm     *float64
}

// UploadFile is one file part of a property upload.
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadResult reports what a successful upload produced.
type UploadResult struct {
	PropertyID   uuid.UUID
	MediaIDs     []uuid.UUID
	TokensEarned int64
}

// UploadService handles the property upload flow: persist the listing,
// store and record each file, and credit the uploader for original content.
type UploadService interface {
	UploadProperty(ctx context.Context, input UploadInput, files []UploadFile) (*UploadResult, error)
}

type uploadService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	mediaRepo    repository.MediaRepository
	tokenRepo    repository.TokenRepository
	store        storage.Store
	cache        *cache.Client
}

// NewUploadService creates a new upload service.
func NewUploadService(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	mediaRepo repository.MediaRepository,
	tokenRepo repository.TokenRepository,
	store storage.Store,
	cache *cache.Client,
) UploadService {
	return &uploadService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		mediaRepo:    mediaRepo,
		tokenRepo:    tokenRepo,
		store:        store,
		cache:        cache,
	}
}

// UploadProperty creates the listing, then processes files one by one. A
// duplicate file (same SHA-256 as any earlier upload) is still recorded and
// stored but earns nothing. Each award runs balance update and ledger insert
// in one DB transaction, so a crash mid-upload can lose later files but never
// leaves a credited balance without its ledger entry.
func (s *uploadService) UploadProperty(ctx context.Context, input UploadInput, files []UploadFile) (*UploadResult, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	property := &model.Property{
		Title:       input.Title,
		Location:    input.Location,
		Price:       input.Price,
		Description: input.Description,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		AreaSqm:     input.AreaSqm,
		UserID:      &input.UserID,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	result := &UploadResult{PropertyID: property.ID}
	firstImagePath := ""

	for _, file := range files {
		contentHash := storage.ContentHash(file.Data)
		duplicate, err := s.mediaRepo.ExistsByContentHash(ctx, contentHash)
		if err != nil {
			return result, fmt.Errorf("duplicate check: %w", err)
		}

		name, err := s.store.Save(file.Filename, file.Data)
		if err != nil {
			return result, fmt.Errorf("store file %s: %w", file.Filename, err)
		}

		// The stored name is a bare file name; its public URL goes through
		// the /uploads route regardless of where the store root lives on
		// disk.
		publicPath := path.Join("/uploads", name)

		fileType := classifyFile(file.Filename)
		media := &model.MediaUpload{
			PropertyID:  property.ID,
			UserID:      input.UserID,
			FilePath:    publicPath,
			FileType:    fileType,
			ContentHash: contentHash,
			FileSize:    int64(len(file.Data)),
			IsOriginal:  !duplicate,
		}
		if !duplicate {
			media.TokensEarned = OriginalUploadTokens
		}
		if err := s.mediaRepo.Create(ctx, media); err != nil {
			return result, fmt.Errorf("create media record: %w", err)
		}

		if !duplicate {
			if err := s.tokenRepo.Award(ctx, input.UserID, media.ID, OriginalUploadTokens); err != nil {
				return result, fmt.Errorf("award tokens: %w", err)
			}
			result.TokensEarned += OriginalUploadTokens
		}

		if firstImagePath == "" && fileType == model.FileTypeImage {
			firstImagePath = publicPath
		}
		result.MediaIDs = append(result.MediaIDs, media.ID)
	}

	// A listing with media must expose a usable thumbnail; the first image
	// serves as both thumbnail and large rendition until a resize pipeline
	// exists.
	if firstImagePath != "" {
		if err := s.propertyRepo.UpdateImages(ctx, property.ID, firstImagePath, firstImagePath); err != nil {
			return result, fmt.Errorf("update property images: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, propertyListCacheKey, userCacheKey(input.UserID))

	logrus.WithFields(logrus.Fields{
		"property_id":   property.ID,
		"user_id":       input.UserID,
		"files":         len(files),
		"tokens_earned": result.TokensEarned,
	}).Info("property uploaded")

	return result, nil
}

// classifyFile maps a filename to the stored media type.
func classifyFile(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".mov":
		return model.FileTypeVideo
	default:
		return model.FileTypeImage
	}
}
