package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// OperatingBalanceRepository stores the singleton platform totals together with
// the set of transaction ids already folded into them
type OperatingBalanceRepository interface {
	// Get returns the current totals
	Get(ctx context.Context) (*entity.OperatingBalance, error)

	// ApplyTransaction marks transactionID as applied and adds delta to the
	// totals. It returns false without changing anything when the id was
	// already applied. Callers run it inside a unit of work so the marker and
	// the totals commit together.
	ApplyTransaction(ctx context.Context, transactionID uint64, delta entity.OperatingDelta, now time.Time) (bool, error)

	// SaveCheckpoint records the highest transaction id the reconciler has settled
	SaveCheckpoint(ctx context.Context, transactionID uint64) error
}
