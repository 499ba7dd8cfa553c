package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// GameHistory represents the database model for played rounds. GameID is not
// a foreign key so rounds survive catalog deletes. A round id is unique per
// player; several players may share one table round.
type GameHistory struct {
	ID            uint64            `gorm:"primaryKey;autoIncrement"`
	UserID        uint64            `gorm:"not null;uniqueIndex:idx_game_history_user_round,priority:1"`
	GameID        uint64            `gorm:"not null;index"`
	TransactionID *uint64           `gorm:"index"`
	RoundID       string            `gorm:"not null;size:100;uniqueIndex:idx_game_history_user_round,priority:2"`
	BetAmount     int64             `gorm:"not null"`
	WinAmount     int64             `gorm:"not null;default:0"`
	Result        string            `gorm:"not null;size:10"`
	OddsAtPlay    decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	GameData      datatypes.JSONMap `gorm:"column:game_data"`
	PlayedAt      time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for GameHistory
func (GameHistory) TableName() string {
	return "game_history"
}
