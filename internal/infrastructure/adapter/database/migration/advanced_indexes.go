package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Walks one wallet's chain in id order
		name: "idx_transactions_wallet_id_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_wallet_id_id ON transactions (wallet_id, id)`,
	},
	{
		// Partial index for game-linked transactions only
		name: "idx_transactions_game_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_game_created
			ON transactions (game_id, created_at) WHERE game_id IS NOT NULL`,
	},
	{
		// BRIN suits the append-only, time ordered ledger
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_game_history_played_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_game_history_played_at_brin
			ON game_history USING BRIN (played_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_system_logs_new_data_gin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_system_logs_new_data_gin ON system_logs USING GIN (new_data)`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)
	db := m.db.WithContext(ctx)

	// Ledger rows are never updated, so pages can be packed full
	if err := db.Exec(`ALTER TABLE transactions SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	// Wallet rows are rewritten on every mutation
	if err := db.Exec(`ALTER TABLE wallets SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for wallets table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN wallet_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for wallet_id", map[string]any{
			"error": err.Error(),
		})
	}
}
