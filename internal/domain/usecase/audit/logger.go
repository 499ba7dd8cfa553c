package audit

import (
	"context"
	"strconv"
	"sync"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Config tunes the background writer
type Config struct {
	QueueSize    int
	WriteTimeout coreport.Duration
}

// DefaultConfig returns the default audit writer configuration
func DefaultConfig() Config {
	return Config{
		QueueSize:    1024,
		WriteTimeout: 5 * coreport.Second,
	}
}

// Logger writes system logs. Log entries go through a buffered queue drained
// by one goroutine; when the queue is full they are written inline.
type Logger struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	mu      sync.RWMutex
	closed  bool
	queue   chan *entity.SystemLog
	pending sync.WaitGroup
	worker  sync.WaitGroup
}

var _ usecase.AuditLogger = (*Logger)(nil)

// NewLogger creates the audit logger and starts its writer
func NewLogger(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Logger {
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	l := &Logger{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		queue:        make(chan *entity.SystemLog, cfg.QueueSize),
	}
	l.worker.Add(1)
	go l.run()
	return l
}

func (l *Logger) run() {
	defer l.worker.Done()
	for entry := range l.queue {
		l.write(context.Background(), entry)
		l.pending.Done()
	}
}

// Log records a state change. The entry is stamped with the actor on ctx.
func (l *Logger) Log(ctx context.Context, entry usecase.AuditEntry) {
	actor := coreport.ActorFromContext(ctx)
	log := &entity.SystemLog{
		UserID:      actor.UserID,
		Action:      entry.Action,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Description: entry.Description,
		OldData:     entry.OldData,
		NewData:     entry.NewData,
		IPAddress:   actor.IPAddress,
		CreatedAt:   l.timeProvider.Now(),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.closed {
		l.pending.Add(1)
		select {
		case l.queue <- log:
			return
		default:
			l.pending.Done()
		}
	}

	l.logger.Debug("Audit queue unavailable, writing inline", map[string]any{
		"action":      string(log.Action),
		"entity_type": log.EntityType,
	})
	l.write(context.WithoutCancel(ctx), log)
}

func (l *Logger) write(ctx context.Context, log *entity.SystemLog) {
	writeCtx, cancel := l.timeProvider.WithTimeout(ctx, l.cfg.WriteTimeout)
	defer cancel()

	if _, err := l.uow.GetSystemLogRepository(writeCtx).Create(writeCtx, log); err != nil {
		l.logger.Error("Failed to write audit entry", map[string]any{
			"action":      string(log.Action),
			"entity_type": log.EntityType,
			"entity_id":   log.EntityID,
			"error":       err.Error(),
		})
	}
}

// RecordTransaction writes the balance_change entry of a committed transaction.
// The correlation key makes repeated calls for the same transaction no-ops.
func (l *Logger) RecordTransaction(ctx context.Context, tx *entity.Transaction, actor coreport.Actor) (bool, error) {
	key := entity.TransactionCorrelationKey(tx.ID)
	newData := tx.Snapshot()
	newData["balance"] = entity.AmountInCentsToString(tx.BalanceAfter)

	log := &entity.SystemLog{
		UserID:      actor.UserID,
		Action:      entity.ActionBalanceChange,
		EntityType:  entity.EntityWallet,
		EntityID:    strconv.FormatUint(tx.WalletID, 10),
		Description: entity.BalanceChangeDescription(tx.BalanceBefore, tx.BalanceAfter),
		OldData: map[string]any{
			"balance": entity.AmountInCentsToString(tx.BalanceBefore),
		},
		NewData:        newData,
		IPAddress:      actor.IPAddress,
		CorrelationKey: &key,
		CreatedAt:      l.timeProvider.Now(),
	}

	created, err := l.uow.GetSystemLogRepository(ctx).Create(ctx, log)
	if err != nil {
		return false, err
	}
	if !created {
		l.logger.Debug("Balance change already audited", map[string]any{
			"transaction_id": tx.ID,
		})
	}
	return created, nil
}

// ListSystemLogs returns the most recent entries, newest first
func (l *Logger) ListSystemLogs(ctx context.Context, limit int) ([]*entity.SystemLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return l.uow.GetSystemLogRepository(ctx).List(ctx, limit)
}

// Flush waits until every queued entry has been written or ctx is done
func (l *Logger) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the queue and stops the writer. Entries logged afterwards are
// written inline.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	l.worker.Wait()
	return nil
}
