package accounting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/audit"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

// seedLedger writes committed transactions directly, as if every post-commit
// step had been lost
func seedLedger(t *testing.T, store *memstore.Store, tp coreport.TimeProvider, deltas []int64) {
	t.Helper()
	ctx := context.Background()

	user, err := entity.NewUser("dora", "dora@example.com", "", "", tp)
	require.NoError(t, err)
	require.NoError(t, store.GetUserRepository(ctx).Create(ctx, user))

	wallet, err := entity.NewWallet(user.ID, tp)
	require.NoError(t, err)
	require.NoError(t, store.GetWalletRepository(ctx).Create(ctx, wallet))

	for _, delta := range deltas {
		txType := entity.TypeCredit
		if delta < 0 {
			txType = entity.TypeLoss
		}
		tx, err := entity.NewTransaction(wallet, txType, delta, tp)
		require.NoError(t, err)

		version := wallet.Version
		require.NoError(t, wallet.ApplyDelta(delta, tp))
		require.NoError(t, store.GetWalletRepository(ctx).UpdateBalance(ctx, wallet, version))
		require.NoError(t, store.GetTransactionRepository(ctx).Create(ctx, tx))
	}
}

func newReconciler(t *testing.T, store *memstore.Store, tp coreport.TimeProvider, cfg ReconcilerConfig) (*Reconciler, *Aggregator) {
	t.Helper()
	noop := logger.NewNoopLogger()
	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().AddReconciled(mock.Anything).Maybe()

	agg := NewAggregator(store, tp, noop)
	auditLogger := audit.NewLogger(store, tp, noop, audit.DefaultConfig())
	t.Cleanup(func() { _ = auditLogger.Close() })

	return NewReconciler(store, agg, auditLogger, metrics, tp, noop, cfg), agg
}

func TestReconcilerRedrivesMissedContinuations(t *testing.T) {
	ctx := context.Background()
	played := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := memstore.New(logger.NewNoopLogger())

	seedLedger(t, store, fixedClock(t, played), []int64{10000, -3000, 2500, -700})

	now := played.Add(time.Minute)
	rec, agg := newReconciler(t, store, fixedClock(t, now), ReconcilerConfig{Grace: coreport.Second, BatchSize: 3})

	result, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Scanned)
	assert.Equal(t, 4, result.Aggregated)
	assert.Equal(t, 4, result.Audited)
	assert.Equal(t, uint64(4), result.Checkpoint)

	balance, err := agg.GetOperatingBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12500), balance.TotalDeposits)
	assert.Equal(t, int64(3700), balance.TotalBets)
	assert.Equal(t, uint64(4), balance.LastReconciledTransactionID)
	assert.True(t, balance.IsConsistent())

	logs, err := store.GetSystemLogRepository(ctx).List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, logs, 4)

	again, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Scanned)
	assert.Equal(t, uint64(4), again.Checkpoint)
}

func TestReconcilerSkipsAlreadyAppliedTransactions(t *testing.T) {
	ctx := context.Background()
	played := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := memstore.New(logger.NewNoopLogger())
	seedLedger(t, store, fixedClock(t, played), []int64{5000, -1000})

	rec, agg := newReconciler(t, store, fixedClock(t, played.Add(time.Hour)), DefaultReconcilerConfig())

	tx, err := store.GetTransactionRepository(ctx).GetByID(ctx, 1)
	require.NoError(t, err)
	applied, err := agg.OnTransactionCommitted(ctx, tx)
	require.NoError(t, err)
	require.True(t, applied)

	result, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Aggregated)

	balance, err := agg.GetOperatingBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance.TotalDeposits)
	assert.Equal(t, int64(1000), balance.TotalBets)
}

func TestReconcilerHonorsGracePeriod(t *testing.T) {
	ctx := context.Background()
	played := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := memstore.New(logger.NewNoopLogger())
	seedLedger(t, store, fixedClock(t, played), []int64{5000})

	rec, _ := newReconciler(t, store, fixedClock(t, played.Add(2*time.Second)),
		ReconcilerConfig{Grace: 10 * coreport.Second, BatchSize: 10})

	result, err := rec.Reconcile(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)
	assert.Zero(t, result.Checkpoint)
}

func TestReconcilerRunStopsOnCancel(t *testing.T) {
	store := memstore.New(logger.NewNoopLogger())
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Now()).Maybe()
	tp.EXPECT().After(mock.Anything).RunAndReturn(func(d coreport.Duration) <-chan time.Time {
		return time.After(time.Millisecond)
	}).Maybe()

	rec, _ := newReconciler(t, store, tp, DefaultReconcilerConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, rec.Run(ctx))
}
