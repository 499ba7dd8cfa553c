package model

import (
	"time"
)

// OperatingBalance is the singleton row of platform totals, keyed id = 1
type OperatingBalance struct {
	ID                          uint64    `gorm:"primaryKey"`
	TotalDeposits               int64     `gorm:"not null;default:0"`
	TotalWithdrawals            int64     `gorm:"not null;default:0"`
	TotalBets                   int64     `gorm:"not null;default:0"`
	TotalPayouts                int64     `gorm:"not null;default:0"`
	OperatingProfit             int64     `gorm:"not null;default:0"`
	LastReconciledTransactionID uint64    `gorm:"not null;default:0"`
	UpdatedAt                   time.Time `gorm:"not null"`
}

// TableName specifies the table name for OperatingBalance
func (OperatingBalance) TableName() string {
	return "operating_balance"
}

// AppliedTransaction marks a transaction already folded into the operating balance
type AppliedTransaction struct {
	TransactionID uint64    `gorm:"primaryKey;autoIncrement:false"`
	AppliedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for AppliedTransaction
func (AppliedTransaction) TableName() string {
	return "applied_transactions"
}
