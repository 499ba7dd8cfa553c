package accounting

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// ReconcilerConfig controls how the transaction log is re-driven
type ReconcilerConfig struct {
	// Interval between periodic passes
	Interval coreport.Duration
	// Grace skips transactions younger than this so in-flight continuations settle first
	Grace     coreport.Duration
	BatchSize int
}

// DefaultReconcilerConfig returns the default reconciler configuration
func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		Interval:  30 * coreport.Second,
		Grace:     10 * coreport.Second,
		BatchSize: 500,
	}
}

// Reconciler replays committed transactions into the aggregator and the audit
// trail. Both are idempotent per transaction id, so replays never double count.
type Reconciler struct {
	uow          persistence.UnitOfWork
	aggregator   usecase.Aggregator
	audit        usecase.AuditLogger
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          ReconcilerConfig
}

var _ usecase.Reconciler = (*Reconciler)(nil)

// NewReconciler creates a new reconciler
func NewReconciler(
	uow persistence.UnitOfWork,
	aggregator usecase.Aggregator,
	audit usecase.AuditLogger,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg ReconcilerConfig,
) *Reconciler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultReconcilerConfig().BatchSize
	}
	return &Reconciler{
		uow:          uow,
		aggregator:   aggregator,
		audit:        audit,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Reconcile processes every transaction after the checkpoint that is older
// than the grace period, advancing the checkpoint after each batch
func (r *Reconciler) Reconcile(ctx context.Context) (*usecase.ReconcileResult, error) {
	balanceRepo := r.uow.GetOperatingBalanceRepository(ctx)
	balance, err := balanceRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read reconcile checkpoint: %w", err)
	}

	result := &usecase.ReconcileResult{Checkpoint: balance.LastReconciledTransactionID}
	cutoff := r.timeProvider.Now().Add(-r.cfg.Grace.Std())
	txRepo := r.uow.GetTransactionRepository(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := txRepo.ListAfter(ctx, result.Checkpoint, cutoff, r.cfg.BatchSize)
		if err != nil {
			return result, fmt.Errorf("failed to list transactions after %d: %w", result.Checkpoint, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, tx := range batch {
			applied, err := r.aggregator.OnTransactionCommitted(ctx, tx)
			if err != nil {
				return result, err
			}
			if applied {
				result.Aggregated++
			}

			audited, err := r.audit.RecordTransaction(ctx, tx, coreport.Actor{})
			if err != nil {
				return result, fmt.Errorf("failed to audit transaction %d: %w", tx.ID, err)
			}
			if audited {
				result.Audited++
			}
			result.Scanned++
		}

		result.Checkpoint = batch[len(batch)-1].ID
		if err := balanceRepo.SaveCheckpoint(ctx, result.Checkpoint); err != nil {
			return result, fmt.Errorf("failed to save reconcile checkpoint: %w", err)
		}

		if len(batch) < r.cfg.BatchSize {
			break
		}
	}

	r.metrics.AddReconciled(result.Aggregated)
	if result.Aggregated > 0 || result.Audited > 0 {
		r.logger.Warn("Reconciler repaired missed continuations", map[string]any{
			"aggregated": result.Aggregated,
			"audited":    result.Audited,
			"checkpoint": result.Checkpoint,
		})
	}
	return result, nil
}

// Run reconciles every interval until ctx is cancelled
func (r *Reconciler) Run(ctx context.Context) error {
	r.logger.Info("Reconciler started", map[string]any{
		"interval": r.cfg.Interval.Std().String(),
		"grace":    r.cfg.Grace.Std().String(),
	})

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciler stopped", nil)
			return nil
		case <-r.timeProvider.After(r.cfg.Interval):
		}

		if _, err := r.Reconcile(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("Reconcile pass failed", map[string]any{
				"error": err.Error(),
			})
		}
	}
}
