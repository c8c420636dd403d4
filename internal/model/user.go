package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered uploader identity. There is no password or
// login flow; clients keep the id they received from registration.
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username      string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	WalletAddress string    `json:"wallet_address" gorm:"size:255"`
	TokenBalance  int64     `json:"token_balance" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
