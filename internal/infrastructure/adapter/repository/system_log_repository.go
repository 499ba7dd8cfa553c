package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// SystemLogRepository implements SystemLogRepository interface using GORM
type SystemLogRepository struct {
	repositoryBase
}

// NewSystemLogRepository creates a new SystemLogRepository instance
func NewSystemLogRepository(db *gorm.DB, logger coreport.Logger) *SystemLogRepository {
	return &SystemLogRepository{repositoryBase: newRepositoryBase(db, logger)}
}

// Create appends an audit entry. Entries with an existing correlation key are
// skipped through ON CONFLICT DO NOTHING so an open transaction is not aborted.
func (r *SystemLogRepository) Create(ctx context.Context, log *entity.SystemLog) (bool, error) {
	logModel := model.SystemLog{
		UserID:         log.UserID,
		Action:         string(log.Action),
		EntityType:     log.EntityType,
		EntityID:       log.EntityID,
		Description:    log.Description,
		OldData:        datatypes.JSONMap(log.OldData),
		NewData:        datatypes.JSONMap(log.NewData),
		IPAddress:      log.IPAddress,
		CorrelationKey: log.CorrelationKey,
		CreatedAt:      log.CreatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&logModel)
	if result.Error != nil {
		return false, r.handleDatabaseError("creating system log", result.Error, nil, map[string]any{
			"action":      string(log.Action),
			"entity_type": log.EntityType,
			"entity_id":   log.EntityID,
		})
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	log.ID = logModel.ID
	return true, nil
}

// List returns the most recent entries, newest first
func (r *SystemLogRepository) List(ctx context.Context, limit int) ([]*entity.SystemLog, error) {
	var models []model.SystemLog
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(clampLimit(limit)).Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing system logs", err, nil, nil)
	}

	logs := make([]*entity.SystemLog, 0, len(models))
	for i := range models {
		m := &models[i]
		logs = append(logs, &entity.SystemLog{
			ID:             m.ID,
			UserID:         m.UserID,
			Action:         entity.LogAction(m.Action),
			EntityType:     m.EntityType,
			EntityID:       m.EntityID,
			Description:    m.Description,
			OldData:        map[string]any(m.OldData),
			NewData:        map[string]any(m.NewData),
			IPAddress:      m.IPAddress,
			CorrelationKey: m.CorrelationKey,
			CreatedAt:      m.CreatedAt,
		})
	}
	return logs, nil
}
