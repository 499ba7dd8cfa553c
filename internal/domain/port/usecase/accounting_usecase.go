package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// Aggregator folds committed transactions into the operating balance
type Aggregator interface {
	// OnTransactionCommitted applies tx to the platform totals once.
	// It returns false when tx had already been applied.
	OnTransactionCommitted(ctx context.Context, tx *entity.Transaction) (bool, error)

	// GetOperatingBalance returns the current platform totals
	GetOperatingBalance(ctx context.Context) (*entity.OperatingBalance, error)
}

// ReconcileResult summarizes one reconciliation pass
type ReconcileResult struct {
	Scanned    int
	Aggregated int
	Audited    int
	Checkpoint uint64
}

// Reconciler re-drives post-commit steps from the transaction log
type Reconciler interface {
	// Reconcile processes every transaction after the checkpoint that is older
	// than the grace period
	Reconcile(ctx context.Context) (*ReconcileResult, error)

	// Run reconciles periodically until ctx is done
	Run(ctx context.Context) error
}
