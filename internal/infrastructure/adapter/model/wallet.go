package model

import (
	"time"
)

// Wallet represents the database model for wallets. Amounts are in cents.
type Wallet struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"uniqueIndex;not null"`
	Balance      int64     `gorm:"not null;default:0"`
	TotalCredits int64     `gorm:"not null;default:0"`
	TotalDebits  int64     `gorm:"not null;default:0"`
	Version      uint64    `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
