package model

import (
	"time"
)

// Transaction represents the database model for ledger entries. Rows are
// append-only; amounts are in cents.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	WalletID      uint64    `gorm:"not null;index:idx_transactions_wallet_reference,priority:1"`
	GameID        *uint64   `gorm:"index"`
	Type          string    `gorm:"not null;size:20;index"`
	Amount        int64     `gorm:"not null"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	ReferenceID   string    `gorm:"size:100;index:idx_transactions_wallet_reference,priority:2"`
	CreatedAt     time.Time `gorm:"not null;index"`

	// Define relationships
	Wallet Wallet `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
