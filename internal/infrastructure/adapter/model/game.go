package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Game represents the database model for the game catalog
type Game struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	Name        string            `gorm:"not null;size:100"`
	Description string            `gorm:"type:text"`
	Category    string            `gorm:"size:50"`
	MinBet      int64             `gorm:"not null"`
	MaxBet      int64             `gorm:"not null"`
	Odds        decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	Status      string            `gorm:"not null;size:20;default:active;index"`
	Rules       datatypes.JSONMap `gorm:"column:rules"`
	ImageURL    string            `gorm:"type:text"`
	CreatedAt   time.Time         `gorm:"not null"`
	UpdatedAt   time.Time         `gorm:"not null"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}
