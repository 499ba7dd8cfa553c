package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// legacyRoundIndex made round ids unique across all players
const legacyRoundIndex = "idx_game_history_round_id"

// ScopeRoundIDsPerUser drops the global round id index. Auto-migration has
// already created the (user_id, round_id) index that replaces it.
type ScopeRoundIDsPerUser struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewScopeRoundIDsPerUser creates a new migration instance
func NewScopeRoundIDsPerUser(db *gorm.DB, logger coreport.Logger) *ScopeRoundIDsPerUser {
	return &ScopeRoundIDsPerUser{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *ScopeRoundIDsPerUser) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	if !migrator.HasIndex(&model.GameHistory{}, legacyRoundIndex) {
		return nil
	}

	m.logger.Info("Dropping global round id index", map[string]any{
		"index": legacyRoundIndex,
	})
	if err := migrator.DropIndex(&model.GameHistory{}, legacyRoundIndex); err != nil {
		m.logger.Error("Failed to drop round id index", map[string]any{
			"index": legacyRoundIndex,
			"error": err.Error(),
		})
		return err
	}
	return nil
}
