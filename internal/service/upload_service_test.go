package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"propfinder/internal/errors"
	"propfinder/internal/model"
)

type uploadMocks struct {
	userRepo     *MockUserRepository
	propertyRepo *MockPropertyRepository
	mediaRepo    *MockMediaRepository
	tokenRepo    *MockTokenRepository
	store        *MockStore
}

func newUploadMocks() *uploadMocks {
	return &uploadMocks{
		userRepo:     new(MockUserRepository),
		propertyRepo: new(MockPropertyRepository),
		mediaRepo:    new(MockMediaRepository),
		tokenRepo:    new(MockTokenRepository),
		store:        new(MockStore),
	}
}

func (m *uploadMocks) service() UploadService {
	return NewUploadService(m.userRepo, m.propertyRepo, m.mediaRepo, m.tokenRepo, m.store, nil)
}

func (m *uploadMocks) assertExpectations(t *testing.T) {
	m.userRepo.AssertExpectations(t)
	m.propertyRepo.AssertExpectations(t)
	m.mediaRepo.AssertExpectations(t)
	m.tokenRepo.AssertExpectations(t)
	m.store.AssertExpectations(t)
}

func TestUploadService_OriginalFileEarnsReward(t *testing.T) {
	userID := uuid.New()
	propertyID := uuid.New()
	mocks := newUploadMocks()

	mocks.userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mocks.propertyRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Property).ID = propertyID
		}).Return(nil)
	mocks.mediaRepo.On("ExistsByContentHash", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	mocks.store.On("Save", "house.jpg", []byte("jpeg-bytes")).Return("1_house.jpg", nil)
	mocks.mediaRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MediaUpload")).Return(nil)
	mocks.tokenRepo.On("Award", mock.Anything, userID, mock.AnythingOfType("uuid.UUID"), int64(OriginalUploadTokens)).Return(nil)
	mocks.propertyRepo.On("UpdateImages", mock.Anything, propertyID, "/uploads/1_house.jpg", "/uploads/1_house.jpg").Return(nil)

	input := UploadInput{
		UserID:   userID,
		Title:    "Beach House",
		Location: "Bali",
		Price:    decimal.NewFromInt(250000),
	}
	files := []UploadFile{{Filename: "house.jpg", Data: []byte("jpeg-bytes")}}

	result, err := mocks.service().UploadProperty(context.Background(), input, files)

	assert.NoError(t, err)
	assert.Equal(t, propertyID, result.PropertyID)
	assert.Equal(t, int64(OriginalUploadTokens), result.TokensEarned)
	assert.Len(t, result.MediaIDs, 1)

	mediaArg := mocks.mediaRepo.Calls[1].Arguments.Get(1).(*model.MediaUpload)
	assert.True(t, mediaArg.IsOriginal)
	assert.Equal(t, int64(OriginalUploadTokens), mediaArg.TokensEarned)
	assert.Equal(t, model.FileTypeImage, mediaArg.FileType)
	assert.Equal(t, int64(len("jpeg-bytes")), mediaArg.FileSize)
	assert.Equal(t, "/uploads/1_house.jpg", mediaArg.FilePath)

	mocks.assertExpectations(t)
}

func TestUploadService_DuplicateFileEarnsNothing(t *testing.T) {
	userID := uuid.New()
	mocks := newUploadMocks()

	mocks.userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mocks.propertyRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).Return(nil)
	mocks.mediaRepo.On("ExistsByContentHash", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)
	mocks.store.On("Save", "copy.jpg", mock.Anything).Return("2_copy.jpg", nil)
	mocks.mediaRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MediaUpload")).Return(nil)
	mocks.propertyRepo.On("UpdateImages", mock.Anything, mock.Anything, "/uploads/2_copy.jpg", "/uploads/2_copy.jpg").Return(nil)

	files := []UploadFile{{Filename: "copy.jpg", Data: []byte("seen-before")}}
	result, err := mocks.service().UploadProperty(context.Background(), UploadInput{UserID: userID}, files)

	assert.NoError(t, err)
	assert.Zero(t, result.TokensEarned)
	assert.Len(t, result.MediaIDs, 1)

	mediaArg := mocks.mediaRepo.Calls[1].Arguments.Get(1).(*model.MediaUpload)
	assert.False(t, mediaArg.IsOriginal)
	assert.Zero(t, mediaArg.TokensEarned)

	mocks.tokenRepo.AssertNotCalled(t, "Award", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.assertExpectations(t)
}

func TestUploadService_VideoDoesNotBecomeThumbnail(t *testing.T) {
	userID := uuid.New()
	mocks := newUploadMocks()

	mocks.userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mocks.propertyRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).Return(nil)
	mocks.mediaRepo.On("ExistsByContentHash", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	mocks.store.On("Save", "tour.mp4", mock.Anything).Return("3_tour.mp4", nil)
	mocks.mediaRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MediaUpload")).Return(nil)
	mocks.tokenRepo.On("Award", mock.Anything, userID, mock.AnythingOfType("uuid.UUID"), int64(OriginalUploadTokens)).Return(nil)

	files := []UploadFile{{Filename: "tour.mp4", Data: []byte("video-bytes")}}
	result, err := mocks.service().UploadProperty(context.Background(), UploadInput{UserID: userID}, files)

	assert.NoError(t, err)
	assert.Equal(t, int64(OriginalUploadTokens), result.TokensEarned)

	mediaArg := mocks.mediaRepo.Calls[1].Arguments.Get(1).(*model.MediaUpload)
	assert.Equal(t, model.FileTypeVideo, mediaArg.FileType)

	mocks.propertyRepo.AssertNotCalled(t, "UpdateImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.assertExpectations(t)
}

func TestUploadService_UnknownUser(t *testing.T) {
	userID := uuid.New()
	mocks := newUploadMocks()

	mocks.userRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	result, err := mocks.service().UploadProperty(context.Background(), UploadInput{UserID: userID}, nil)

	assert.Nil(t, result)
	assert.Equal(t, errors.ErrUserNotFound, err)
	mocks.propertyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mocks.assertExpectations(t)
}
