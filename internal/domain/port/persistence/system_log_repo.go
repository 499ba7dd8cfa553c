package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// SystemLogRepository is the append-only audit trail
type SystemLogRepository interface {
	// Create appends an entry and assigns its ID. When the entry carries a
	// correlation key that already exists nothing is written and false is returned.
	Create(ctx context.Context, log *entity.SystemLog) (bool, error)

	// List returns the most recent entries, newest first
	List(ctx context.Context, limit int) ([]*entity.SystemLog, error)
}
