package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// OperatingBalanceRepository implements OperatingBalanceRepository interface using GORM
type OperatingBalanceRepository struct {
	repositoryBase
}

// NewOperatingBalanceRepository creates a new OperatingBalanceRepository instance
func NewOperatingBalanceRepository(db *gorm.DB, logger coreport.Logger) *OperatingBalanceRepository {
	return &OperatingBalanceRepository{repositoryBase: newRepositoryBase(db, logger)}
}

// Get returns the current platform totals
func (r *OperatingBalanceRepository) Get(ctx context.Context) (*entity.OperatingBalance, error) {
	var row model.OperatingBalance
	if err := r.db.WithContext(ctx).First(&row, entity.OperatingBalanceID).Error; err != nil {
		return nil, r.handleDatabaseError("getting operating balance", err, errs.ErrNotFound, nil)
	}

	return &entity.OperatingBalance{
		TotalDeposits:               row.TotalDeposits,
		TotalWithdrawals:            row.TotalWithdrawals,
		TotalBets:                   row.TotalBets,
		TotalPayouts:                row.TotalPayouts,
		OperatingProfit:             row.OperatingProfit,
		LastReconciledTransactionID: row.LastReconciledTransactionID,
		UpdatedAt:                   row.UpdatedAt,
	}, nil
}

// ApplyTransaction inserts the applied marker and, only if it was new, adds
// the delta with in-place increments on the singleton row
func (r *OperatingBalanceRepository) ApplyTransaction(ctx context.Context, transactionID uint64, delta entity.OperatingDelta, now time.Time) (bool, error) {
	db := r.db.WithContext(ctx)

	marker := model.AppliedTransaction{TransactionID: transactionID, AppliedAt: now}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&marker)
	if result.Error != nil {
		return false, r.handleDatabaseError("marking transaction applied", result.Error, nil, map[string]any{
			"transaction_id": transactionID,
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Debug("Transaction already aggregated", map[string]any{
			"transaction_id": transactionID,
		})
		return false, nil
	}

	if delta.IsZero() {
		return true, nil
	}

	result = db.Model(&model.OperatingBalance{}).
		Where("id = ?", entity.OperatingBalanceID).
		Updates(map[string]any{
			"total_deposits":    gorm.Expr("total_deposits + ?", delta.Deposits),
			"total_withdrawals": gorm.Expr("total_withdrawals + ?", delta.Withdrawals),
			"total_bets":        gorm.Expr("total_bets + ?", delta.Bets),
			"total_payouts":     gorm.Expr("total_payouts + ?", delta.Payouts),
			"operating_profit":  gorm.Expr("operating_profit + ?", delta.Bets-delta.Payouts),
			"updated_at":        now,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("updating operating balance", result.Error, nil, map[string]any{
			"transaction_id": transactionID,
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Error("Operating balance row is missing", map[string]any{
			"id": entity.OperatingBalanceID,
		})
		return false, errs.ErrNotFound
	}
	return true, nil
}

// SaveCheckpoint records the reconciler checkpoint; it never moves backwards
func (r *OperatingBalanceRepository) SaveCheckpoint(ctx context.Context, transactionID uint64) error {
	err := r.db.WithContext(ctx).Model(&model.OperatingBalance{}).
		Where("id = ? AND last_reconciled_transaction_id < ?", entity.OperatingBalanceID, transactionID).
		Update("last_reconciled_transaction_id", transactionID).Error
	if err != nil {
		return r.handleDatabaseError("saving reconcile checkpoint", err, nil, map[string]any{
			"transaction_id": transactionID,
		})
	}
	return nil
}
