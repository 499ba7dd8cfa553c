package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/accounting"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/audit"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/metrics"
)

// setupIntegration connects to the TEST_DB_* database with a fresh schema
func setupIntegration(t *testing.T) *database.TestDBManager {
	t.Helper()
	m := database.NewTestDBManager(t, logger.NewNoopLogger())
	m.Connect(t)
	t.Cleanup(func() { m.Close(t) })
	m.SetupTestDB(t)
	return m
}

func TestMigrationsAreIdempotent(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()

	require.NoError(t, m.Manager.Migrate(ctx))
	require.NoError(t, m.Manager.Migrate(ctx))

	version, err := m.Manager.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	balance, err := m.Manager.UnitOfWork().GetOperatingBalanceRepository(ctx).Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, balance.OperatingProfit)
}

func TestUnitOfWorkCommitAndRollback(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	uow := m.Manager.UnitOfWork()
	_, walletID := m.CreateTestWallet(t, "rollback", 10000)

	write := func(ctx context.Context, amount int64) (*entity.Transaction, error) {
		wallets := uow.GetWalletRepository(ctx)
		wallet, err := wallets.GetForUpdate(ctx, walletID)
		if err != nil {
			return nil, err
		}
		tx, err := entity.NewTransaction(wallet, entity.TypeCredit, amount, m.TimeProvider)
		if err != nil {
			return nil, err
		}
		version := wallet.Version
		if err := wallet.ApplyDelta(amount, m.TimeProvider); err != nil {
			return nil, err
		}
		if err := wallets.UpdateBalance(ctx, wallet, version); err != nil {
			return nil, err
		}
		return tx, uow.GetTransactionRepository(ctx).Create(ctx, tx)
	}

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = write(txCtx, 500)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(txCtx))

	wallet, err := uow.GetWalletRepository(ctx).GetByID(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), wallet.Balance())

	txs, err := uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{WalletID: &walletID})
	require.NoError(t, err)
	assert.Empty(t, txs)

	txCtx, err = uow.Begin(ctx)
	require.NoError(t, err)
	committed, err := write(txCtx, 700)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))
	// Rolling back a finished transaction is a no-op
	require.NoError(t, uow.Rollback(txCtx))

	wallet, err = uow.GetWalletRepository(ctx).GetByID(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(10700), wallet.Balance())

	stored, err := uow.GetTransactionRepository(ctx).GetByID(ctx, committed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), stored.BalanceBefore)
	assert.Equal(t, int64(10700), stored.BalanceAfter)

	_, err = uow.Begin(txCtx)
	assert.Error(t, err, "nested transactions are rejected")
}

func TestWalletCompareAndSwap(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	wallets := m.Manager.UnitOfWork().GetWalletRepository(ctx)
	_, walletID := m.CreateTestWallet(t, "cas", 0)

	first, err := wallets.GetByID(ctx, walletID)
	require.NoError(t, err)
	stale, err := wallets.GetByID(ctx, walletID)
	require.NoError(t, err)

	version := first.Version
	require.NoError(t, first.ApplyDelta(100, m.TimeProvider))
	require.NoError(t, wallets.UpdateBalance(ctx, first, version))

	staleVersion := stale.Version
	require.NoError(t, stale.ApplyDelta(200, m.TimeProvider))
	err = wallets.UpdateBalance(ctx, stale, staleVersion)
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)

	current, err := wallets.GetByID(ctx, walletID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), current.Balance())
	assert.Equal(t, version+1, current.Version)
}

func TestFindByReference(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	uow := m.Manager.UnitOfWork()
	_, walletID := m.CreateTestWallet(t, "reference", 0)

	wallet, err := uow.GetWalletRepository(ctx).GetByID(ctx, walletID)
	require.NoError(t, err)
	tx, err := entity.NewTransaction(wallet, entity.TypeCredit, 2500, m.TimeProvider, entity.WithReferenceID("dep-42"))
	require.NoError(t, err)
	require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, tx))

	since := m.TimeProvider.Now().Add(-time.Hour)
	found, ok, err := uow.GetTransactionRepository(ctx).FindByReference(ctx, walletID, "dep-42", since)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tx.ID, found.ID)

	_, ok, err = uow.GetTransactionRepository(ctx).FindByReference(ctx, walletID, "dep-43", since)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = uow.GetTransactionRepository(ctx).FindByReference(ctx, walletID, "dep-42", m.TimeProvider.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "references older than the window are ignored")
}

func TestOperatingBalanceAppliesOnce(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	repo := m.Manager.UnitOfWork().GetOperatingBalanceRepository(ctx)
	now := m.TimeProvider.Now()

	applied, err := repo.ApplyTransaction(ctx, 1, entity.OperatingDelta{Bets: 3000}, now)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.ApplyTransaction(ctx, 1, entity.OperatingDelta{Bets: 3000}, now)
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = repo.ApplyTransaction(ctx, 2, entity.OperatingDelta{Payouts: 1000}, now)
	require.NoError(t, err)
	assert.True(t, applied)

	require.NoError(t, repo.SaveCheckpoint(ctx, 2))
	require.NoError(t, repo.SaveCheckpoint(ctx, 1))

	balance, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), balance.TotalBets)
	assert.Equal(t, int64(1000), balance.TotalPayouts)
	assert.Equal(t, int64(2000), balance.OperatingProfit)
	assert.Equal(t, uint64(2), balance.LastReconciledTransactionID)
}

func TestSystemLogCorrelationKeyDeduplicates(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	repo := m.Manager.UnitOfWork().GetSystemLogRepository(ctx)

	key := "transaction:1"
	newLog := func() *entity.SystemLog {
		return &entity.SystemLog{
			Action:         entity.ActionBalanceChange,
			EntityType:     entity.EntityTransaction,
			EntityID:       "1",
			NewData:        map[string]any{"amount": "30.00"},
			CorrelationKey: &key,
			CreatedAt:      m.TimeProvider.Now(),
		}
	}

	created, err := repo.Create(ctx, newLog())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, newLog())
	require.NoError(t, err)
	assert.False(t, created)

	logs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "30.00", logs[0].NewData["amount"])
}

func TestWalletLockLease(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	_, walletID := m.CreateTestWallet(t, "locked", 0)

	locks, err := m.Manager.WalletLockRepository()
	require.NoError(t, err)

	token, err := locks.AcquireLock(ctx, walletID, time.Minute)
	require.NoError(t, err)

	_, err = locks.AcquireLock(ctx, walletID, time.Minute)
	assert.ErrorIs(t, err, errs.ErrWalletLocked)

	require.NoError(t, locks.ReleaseLock(ctx, walletID, "not-the-owner"))
	_, err = locks.AcquireLock(ctx, walletID, time.Minute)
	assert.ErrorIs(t, err, errs.ErrWalletLocked, "a foreign token does not release the lock")

	require.NoError(t, locks.ReleaseLock(ctx, walletID, token))
	expiring, err := locks.AcquireLock(ctx, walletID, time.Millisecond)
	require.NoError(t, err)

	// An expired lease is taken over
	time.Sleep(20 * time.Millisecond)
	taken, err := locks.AcquireLock(ctx, walletID, time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, expiring, taken)
}

// TestConcurrentLedgerOnRealStore runs the full ledger against the database:
// concurrent credits on one wallet serialize without losing updates
func TestConcurrentLedgerOnRealStore(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	noop := logger.NewNoopLogger()
	uow := m.Manager.UnitOfWork()
	tp := m.TimeProvider

	auditLogger := audit.NewLogger(uow, tp, noop, audit.DefaultConfig())
	t.Cleanup(func() { _ = auditLogger.Close() })
	catalog := game.NewCatalog(uow, auditLogger, tp, noop)
	aggregator := accounting.NewAggregator(uow, tp, noop)

	locks, err := m.Manager.WalletLockRepository()
	require.NoError(t, err)

	cfg := ledger.DefaultConfig()
	cfg.Retry.MaxRetries = 20
	cfg.QueryTimeout = coreport.Duration(m.Config.QueryTimeout)

	// Two engines share the store to exercise the cross-process lock
	engines := []*ledger.Service{
		ledger.NewService(uow, catalog, aggregator, auditLogger, locks, metrics.NewNoopMetrics(), tp, noop, cfg),
		ledger.NewService(uow, catalog, aggregator, auditLogger, locks, metrics.NewNoopMetrics(), tp, noop, cfg),
	}
	t.Cleanup(func() {
		for _, e := range engines {
			e.Shutdown()
		}
	})

	_, walletID := m.CreateTestWallet(t, "concurrent", 0)
	const n = 40

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		engine := engines[i%len(engines)]
		ref := fmt.Sprintf("credit-%d", i)
		g.Go(func() error {
			for {
				_, err := engine.ApplyTransaction(gctx, usecase.ApplyTransactionRequest{
					WalletID:    walletID,
					Type:        string(entity.TypeCredit),
					Amount:      "1.00",
					ReferenceID: ref,
				})
				if err == nil {
					return nil
				}
				if !isContention(err) {
					return err
				}
				time.Sleep(5 * time.Millisecond)
			}
		})
	}
	require.NoError(t, g.Wait())

	wallet, err := engines[0].GetWallet(ctx, userOfWallet(t, m, walletID))
	require.NoError(t, err)
	assert.Equal(t, int64(n*100), wallet.Balance())

	txs, err := uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{WalletID: &walletID, Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, txs, n)

	require.NoError(t, auditLogger.Flush(ctx))
	result, err := accounting.NewVerifier(uow, tp, noop).Verify(ctx)
	require.NoError(t, err)
	assert.True(t, result.OK(), "issues: %v", result.Issues)

	balance, err := aggregator.GetOperatingBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n*100), balance.TotalDeposits)
}

func TestGameHistoryRoundIsScopedPerUser(t *testing.T) {
	m := setupIntegration(t)
	ctx := context.Background()
	repo := m.Manager.UnitOfWork().GetGameHistoryRepository(ctx)
	alice, _ := m.CreateTestWallet(t, "round-alice", 0)
	bob, _ := m.CreateTestWallet(t, "round-bob", 0)

	round := func(userID uint64) *entity.GameHistory {
		return &entity.GameHistory{
			UserID:     userID,
			GameID:     1,
			RoundID:    "table-1-spin-42",
			BetAmount:  1000,
			Result:     entity.ResultLoss,
			OddsAtPlay: decimal.RequireFromString("2.00"),
			PlayedAt:   m.TimeProvider.Now(),
		}
	}

	require.NoError(t, repo.Create(ctx, round(alice)))
	require.NoError(t, repo.Create(ctx, round(bob)))
	assert.ErrorIs(t, repo.Create(ctx, round(bob)), errs.ErrConstraintViolation)

	found, ok, err := repo.FindByRound(ctx, bob, "table-1-spin-42")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, bob, found.UserID)

	_, ok, err = repo.FindByRound(ctx, bob, "table-1-spin-43")
	require.NoError(t, err)
	assert.False(t, ok)
}

// isContention reports errors a client would retry
func isContention(err error) bool {
	return errs.ErrorCode(err) == errs.CodeWalletLocked || errs.ErrorCode(err) == errs.CodeConcurrentModification
}

func userOfWallet(t *testing.T, m *database.TestDBManager, walletID uint64) uint64 {
	t.Helper()
	ctx := context.Background()
	wallet, err := m.Manager.UnitOfWork().GetWalletRepository(ctx).GetByID(ctx, walletID)
	require.NoError(t, err)
	return wallet.UserID
}
