package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

type checkConstraint struct {
	model      any
	table      string
	name       string
	expression string
}

var ledgerConstraints = []checkConstraint{
	{&model.OperatingBalance{}, "operating_balance", "chk_operating_balance_profit", "operating_profit = total_bets - total_payouts"},
	{&model.OperatingBalance{}, "operating_balance", "chk_operating_balance_singleton", "id = 1"},
	{&model.Wallet{}, "wallets", "chk_wallets_totals_non_negative", "total_credits >= 0 AND total_debits >= 0"},
	{&model.Transaction{}, "transactions", "chk_transactions_amount_positive", "amount > 0"},
	{&model.Transaction{}, "transactions", "chk_transactions_balance_chain", "ABS(balance_after - balance_before) = amount"},
}

// AddLedgerConstraints adds the CHECK constraints that keep the stored ledger
// consistent even when written outside the engine
type AddLedgerConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddLedgerConstraints creates a new migration instance
func NewAddLedgerConstraints(db *gorm.DB, logger coreport.Logger) *AddLedgerConstraints {
	return &AddLedgerConstraints{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddLedgerConstraints) Run(ctx context.Context) error {
	m.logger.Info("Adding ledger check constraints", nil)
	db := m.db.WithContext(ctx)

	for _, c := range ledgerConstraints {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}

		sql := "ALTER TABLE " + c.table + " ADD CONSTRAINT " + c.name + " CHECK (" + c.expression + ")"
		if err := db.Exec(sql).Error; err != nil {
			m.logger.Error("Failed to add check constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Ledger check constraints added", map[string]any{
		"count": len(ledgerConstraints),
	})
	return nil
}
