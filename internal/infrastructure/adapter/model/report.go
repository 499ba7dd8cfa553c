package model

import (
	"time"

	"gorm.io/datatypes"
)

// Report represents the database model for generated financial reports
type Report struct {
	ID                uint64            `gorm:"primaryKey;autoIncrement"`
	ReportType        string            `gorm:"not null;size:20"`
	PeriodStart       time.Time         `gorm:"not null"`
	PeriodEnd         time.Time         `gorm:"not null"`
	TotalBets         int64             `gorm:"not null;default:0"`
	TotalWins         int64             `gorm:"not null;default:0"`
	TotalLosses       int64             `gorm:"not null;default:0"`
	NetProfit         int64             `gorm:"not null;default:0"`
	TotalTransactions int64             `gorm:"not null;default:0"`
	ReportData        datatypes.JSONMap `gorm:"column:report_data"`
	CreatedAt         time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
