package model

import (
	"time"

	"gorm.io/datatypes"
)

// SystemLog represents the database model for the audit trail
type SystemLog struct {
	ID             uint64            `gorm:"primaryKey;autoIncrement"`
	UserID         *uint64           `gorm:"index"`
	Action         string            `gorm:"not null;size:20;index"`
	EntityType     string            `gorm:"not null;size:50;index:idx_system_logs_entity,priority:1"`
	EntityID       string            `gorm:"size:50;index:idx_system_logs_entity,priority:2"`
	Description    string            `gorm:"type:text"`
	OldData        datatypes.JSONMap `gorm:"column:old_data"`
	NewData        datatypes.JSONMap `gorm:"column:new_data"`
	IPAddress      string            `gorm:"size:45"`
	CorrelationKey *string           `gorm:"uniqueIndex;size:100"`
	CreatedAt      time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for SystemLog
func (SystemLog) TableName() string {
	return "system_logs"
}
