package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propfinder/internal/model"
)

// TokenRepository defines token ledger persistence operations.
type TokenRepository interface {
	// Award credits amount to the user's balance and appends the matching
	// ledger entry in a single database transaction.
	Award(ctx context.Context, userID uuid.UUID, mediaID uuid.UUID, amount int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TokenTransaction, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Award(ctx context.Context, userID uuid.UUID, mediaID uuid.UUID, amount int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("token_balance", gorm.Expr("token_balance + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := model.TokenTransaction{
			UserID:          userID,
			MediaID:         &mediaID,
			Amount:          amount,
			TransactionType: model.TxTypeUploadReward,
		}
		return tx.Create(&entry).Error
	})
}

func (r *tokenRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TokenTransaction, error) {
	var transactions []model.TokenTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
