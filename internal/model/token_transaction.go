package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types recorded in the token ledger.
const (
	TxTypeUploadReward = "upload_reward"
)

// TokenTransaction is an append-only ledger entry behind every balance
// mutation, so token_balance is always reconstructible from the ledger.
type TokenTransaction struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index"`
	MediaID         *uuid.UUID `json:"media_id" gorm:"type:char(36);index"`
	Amount          int64      `json:"amount" gorm:"not null"`
	TransactionType string     `json:"transaction_type" gorm:"size:50;not null"`
	CreatedAt       time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *TokenTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
