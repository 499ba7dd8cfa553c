package ledger

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Config tunes the ledger engine
type Config struct {
	Retry RetryConfig
	// DuplicateWindow bounds how far back reference ids are checked; zero checks all history
	DuplicateWindow coreport.Duration
	// QueryTimeout bounds every atomic write and post-commit step
	QueryTimeout coreport.Duration
	// LockTTL is the lease of the cross-process wallet lock
	LockTTL              coreport.Duration
	SequencerEnabled     bool
	SequencerQueueSize   int
	SequencerIdleTimeout coreport.Duration
	// HistoryWriteRetries bounds extra attempts to store a settled round
	HistoryWriteRetries int
}

// DefaultConfig returns the default ledger configuration
func DefaultConfig() Config {
	return Config{
		Retry: RetryConfig{
			MaxRetries:    3,
			RetryInterval: 10 * coreport.Millisecond,
			MaxInterval:   200 * coreport.Millisecond,
			JitterFactor:  0.2,
		},
		DuplicateWindow:      24 * coreport.Hour,
		QueryTimeout:         5 * coreport.Second,
		LockTTL:              10 * coreport.Second,
		SequencerEnabled:     true,
		SequencerQueueSize:   100,
		SequencerIdleTimeout: coreport.Minute,
		HistoryWriteRetries:  3,
	}
}

// Service is the wallet ledger. It is the only writer of wallet balances.
type Service struct {
	uow          persistence.UnitOfWork
	catalog      usecase.GameCatalog
	aggregator   usecase.Aggregator
	audit        usecase.AuditLogger
	locker       persistence.WalletLocker
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	sequencer   *WalletSequencer
	validator   *RequestValidator
	idempotency *IdempotencyHandler
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates the ledger. locker may be nil when wallets are only
// written by this process.
func NewService(
	uow persistence.UnitOfWork,
	catalog usecase.GameCatalog,
	aggregator usecase.Aggregator,
	audit usecase.AuditLogger,
	locker persistence.WalletLocker,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	s := &Service{
		uow:          uow,
		catalog:      catalog,
		aggregator:   aggregator,
		audit:        audit,
		locker:       locker,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		validator:    NewRequestValidator(),
		idempotency:  NewIdempotencyHandler(cfg.DuplicateWindow, timeProvider),
	}
	if cfg.SequencerEnabled {
		s.sequencer = NewWalletSequencer(logger, timeProvider, cfg.SequencerQueueSize, cfg.SequencerIdleTimeout)
	}

	logger.Info("Ledger initialized", map[string]any{
		"sequencer":            cfg.SequencerEnabled,
		"max_conflict_retries": cfg.Retry.MaxRetries,
		"cross_process_lock":   locker != nil,
	})
	return s
}

// Shutdown finishes queued mutations and stops the wallet workers
func (s *Service) Shutdown() {
	if s.sequencer != nil {
		s.sequencer.Shutdown()
	}
}

// GetWallet returns the wallet owned by a user
func (s *Service) GetWallet(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.uow.GetWalletRepository(ctx).GetByUserID(ctx, userID)
}

// ListTransactions returns transactions newest first
func (s *Service) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}

// ListGameHistory returns played rounds newest first
func (s *Service) ListGameHistory(ctx context.Context, filter persistence.GameHistoryFilter) ([]*entity.GameHistory, error) {
	filter.Limit = clampLimit(filter.Limit)
	return s.uow.GetGameHistoryRepository(ctx).List(ctx, filter)
}

// GetOperatingBalance returns the platform totals
func (s *Service) GetOperatingBalance(ctx context.Context) (*entity.OperatingBalance, error) {
	return s.aggregator.GetOperatingBalance(ctx)
}

// ListSystemLogs returns audit entries newest first
func (s *Service) ListSystemLogs(ctx context.Context, limit int) ([]*entity.SystemLog, error) {
	return s.audit.ListSystemLogs(ctx, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
