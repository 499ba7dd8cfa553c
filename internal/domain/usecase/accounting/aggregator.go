package accounting

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// Aggregator keeps the operating balance in step with the transaction log.
// Each transaction id is applied at most once.
type Aggregator struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.Aggregator = (*Aggregator)(nil)

// NewAggregator creates a new operating balance aggregator
func NewAggregator(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Aggregator {
	return &Aggregator{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// OnTransactionCommitted folds tx into the platform totals. The applied marker
// and the totals are written in one unit of work.
func (a *Aggregator) OnTransactionCommitted(ctx context.Context, tx *entity.Transaction) (bool, error) {
	delta := entity.OperatingDeltaFor(tx)

	txCtx, err := a.uow.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin aggregation: %w", err)
	}

	applied, err := a.uow.GetOperatingBalanceRepository(txCtx).ApplyTransaction(txCtx, tx.ID, delta, a.timeProvider.Now())
	if err != nil {
		if rbErr := a.uow.Rollback(txCtx); rbErr != nil {
			a.logger.Error("Failed to rollback aggregation", map[string]any{
				"transaction_id": tx.ID,
				"error":          rbErr.Error(),
			})
		}
		return false, fmt.Errorf("failed to aggregate transaction %d: %w", tx.ID, err)
	}

	if err := a.uow.Commit(txCtx); err != nil {
		return false, fmt.Errorf("failed to commit aggregation of transaction %d: %w", tx.ID, err)
	}

	if applied {
		a.logger.Debug("Transaction aggregated", map[string]any{
			"transaction_id": tx.ID,
			"type":           string(tx.Type),
			"amount":         entity.AmountInCentsToString(tx.Amount),
		})
	}
	return applied, nil
}

// GetOperatingBalance returns the current platform totals
func (a *Aggregator) GetOperatingBalance(ctx context.Context) (*entity.OperatingBalance, error) {
	return a.uow.GetOperatingBalanceRepository(ctx).Get(ctx)
}
