package model

import (
	"time"
)

// WalletLock is a cross-process lease on a wallet. Token identifies the owner.
type WalletLock struct {
	WalletID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	Token     string    `gorm:"not null;size:36"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for WalletLock
func (WalletLock) TableName() string {
	return "wallet_locks"
}
