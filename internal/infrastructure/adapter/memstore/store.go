// Package memstore is an in-process implementation of the persistence ports.
// A unit of work holds the store exclusively from Begin until Commit or
// Rollback, which gives serializable isolation. Rollback replays an undo log.
package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

type txKey struct{}

// memTx is an open unit of work
type memTx struct {
	store *Store
	undo  []func()
	done  bool
}

func (t *memTx) onRollback(fn func()) {
	if t != nil {
		t.undo = append(t.undo, fn)
	}
}

// Store keeps every table in memory
type Store struct {
	sem    chan struct{}
	logger coreport.Logger

	users          map[uint64]*entity.User
	usersByName    map[string]uint64
	usersByEmail   map[string]uint64
	wallets        map[uint64]*entity.Wallet
	walletsByUser  map[uint64]uint64
	transactions   []*entity.Transaction
	walletTxs      map[uint64][]int
	games          map[uint64]*entity.Game
	histories      []*entity.GameHistory
	roundIDs       map[roundKey]int
	operating      entity.OperatingBalance
	appliedTxs     map[uint64]struct{}
	systemLogs     []*entity.SystemLog
	correlationKey map[string]struct{}
	reports        []*entity.Report

	nextUserID    uint64
	nextWalletID  uint64
	nextGameID    uint64
	nextHistoryID uint64
	nextLogID     uint64
	nextReportID  uint64
}

var _ persistence.UnitOfWork = (*Store)(nil)

// New creates an empty store
func New(logger coreport.Logger) *Store {
	return &Store{
		sem:            make(chan struct{}, 1),
		logger:         logger,
		users:          make(map[uint64]*entity.User),
		usersByName:    make(map[string]uint64),
		usersByEmail:   make(map[string]uint64),
		wallets:        make(map[uint64]*entity.Wallet),
		walletsByUser:  make(map[uint64]uint64),
		walletTxs:      make(map[uint64][]int),
		games:          make(map[uint64]*entity.Game),
		roundIDs:       make(map[roundKey]int),
		appliedTxs:     make(map[uint64]struct{}),
		correlationKey: make(map[string]struct{}),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return storageError(ctx.Err())
	}
}

func (s *Store) release() {
	<-s.sem
}

func storageError(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
}

func (s *Store) txFromContext(ctx context.Context) *memTx {
	if tx, ok := ctx.Value(txKey{}).(*memTx); ok && tx.store == s && !tx.done {
		return tx
	}
	return nil
}

// run executes fn with exclusive access to the tables. Inside a unit of work
// the store is already held and fn records undo entries on the transaction.
func (s *Store) run(ctx context.Context, fn func(tx *memTx) error) error {
	if err := ctx.Err(); err != nil {
		return storageError(err)
	}
	if tx := s.txFromContext(ctx); tx != nil {
		return fn(tx)
	}
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return fn(nil)
}

// Begin starts a new unit of work
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if s.txFromContext(ctx) != nil {
		return nil, errors.New("memstore: nested unit of work")
	}
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	return context.WithValue(ctx, txKey{}, &memTx{store: s}), nil
}

// Commit makes the unit of work's changes permanent
func (s *Store) Commit(ctx context.Context) error {
	tx := s.txFromContext(ctx)
	if tx == nil {
		return errors.New("no transaction found in context")
	}
	tx.done = true
	tx.undo = nil
	s.release()
	return nil
}

// Rollback reverts the unit of work. Rolling back a finished unit is a no-op.
func (s *Store) Rollback(ctx context.Context) error {
	tx := s.txFromContext(ctx)
	if tx == nil {
		return nil
	}
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	s.logger.Debug("Rolled back in-memory unit of work", map[string]any{
		"undone_writes": len(tx.undo),
	})
	tx.done = true
	tx.undo = nil
	s.release()
	return nil
}

func (s *Store) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return &walletRepository{store: s}
}

func (s *Store) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &transactionRepository{store: s}
}

func (s *Store) GetGameHistoryRepository(ctx context.Context) persistence.GameHistoryRepository {
	return &gameHistoryRepository{store: s}
}

func (s *Store) GetGameRepository(ctx context.Context) persistence.GameRepository {
	return &gameRepository{store: s}
}

func (s *Store) GetOperatingBalanceRepository(ctx context.Context) persistence.OperatingBalanceRepository {
	return &operatingBalanceRepository{store: s}
}

func (s *Store) GetSystemLogRepository(ctx context.Context) persistence.SystemLogRepository {
	return &systemLogRepository{store: s}
}

func (s *Store) GetReportRepository(ctx context.Context) persistence.ReportRepository {
	return &reportRepository{store: s}
}

func clampLimit(limit, total int) int {
	if limit <= 0 || limit > total {
		return total
	}
	return limit
}
