package model

import (
	"time"
)

// MigrationVersion records each schema version applied to the ledger database
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}

// All returns every ledger table model in creation order
func All() []any {
	return []any{
		&User{},
		&Wallet{},
		&Transaction{},
		&Game{},
		&GameHistory{},
		&OperatingBalance{},
		&AppliedTransaction{},
		&SystemLog{},
		&Report{},
		&WalletLock{},
	}
}
