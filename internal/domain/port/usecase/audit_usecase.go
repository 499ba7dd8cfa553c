package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// AuditEntry is a state change to be written to the audit trail.
// The actor is taken from the context.
type AuditEntry struct {
	Action      entity.LogAction
	EntityType  string
	EntityID    string
	Description string
	OldData     map[string]any
	NewData     map[string]any
}

// AuditLogger records state-changing operations as system logs
type AuditLogger interface {
	// Log queues an entry for the background writer. It never fails the caller.
	Log(ctx context.Context, entry AuditEntry)

	// RecordTransaction writes the balance_change entry of a committed
	// transaction. Calling it again for the same transaction writes nothing
	// and returns false.
	RecordTransaction(ctx context.Context, tx *entity.Transaction, actor core.Actor) (bool, error)

	// ListSystemLogs returns entries newest first
	ListSystemLogs(ctx context.Context, limit int) ([]*entity.SystemLog, error)

	// Flush blocks until every queued entry has been written
	Flush(ctx context.Context) error

	// Close stops the background writer after draining the queue
	Close() error
}
