package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/accounting"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/audit"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

type harness struct {
	store   *memstore.Store
	ledger  *Service
	agg     *accounting.Aggregator
	audit   *audit.Logger
	catalog *usecasemocks.MockGameCatalog
	tp      coreport.TimeProvider
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Retry.RetryInterval = coreport.Millisecond
	cfg.Retry.MaxInterval = 5 * coreport.Millisecond
	cfg.SequencerIdleTimeout = 50 * coreport.Millisecond
	return cfg
}

func quietMetrics(t *testing.T) *coremocks.MockMetrics {
	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().ObserveMutation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().IncConflictRetry().Maybe()
	metrics.EXPECT().IncContinuationFailure(mock.Anything).Maybe()
	metrics.EXPECT().ObserveGamePlay(mock.Anything).Maybe()
	return metrics
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	noop := logger.NewNoopLogger()
	tp := timeadapter.NewRealTimeProvider()
	store := memstore.New(noop)

	agg := accounting.NewAggregator(store, tp, noop)
	auditLogger := audit.NewLogger(store, tp, noop, audit.DefaultConfig())
	catalog := usecasemocks.NewMockGameCatalog(t)

	ledger := NewService(store, catalog, agg, auditLogger, nil, quietMetrics(t), tp, noop, cfg)
	t.Cleanup(func() {
		ledger.Shutdown()
		_ = auditLogger.Close()
	})

	return &harness{
		store:   store,
		ledger:  ledger,
		agg:     agg,
		audit:   auditLogger,
		catalog: catalog,
		tp:      tp,
	}
}

// newWallet creates a user and wallet, funding it with an initial credit
func (h *harness) newWallet(t *testing.T, username, initial string) *entity.Wallet {
	t.Helper()
	ctx := context.Background()

	user, err := entity.NewUser(username, username+"@example.com", "", "", h.tp)
	require.NoError(t, err)
	require.NoError(t, h.store.GetUserRepository(ctx).Create(ctx, user))

	wallet, err := entity.NewWallet(user.ID, h.tp)
	require.NoError(t, err)
	require.NoError(t, h.store.GetWalletRepository(ctx).Create(ctx, wallet))

	if initial != "" {
		_, err := h.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
			WalletID:    wallet.ID,
			Type:        "credit",
			Amount:      initial,
			Description: "initial deposit",
		})
		require.NoError(t, err)
	}
	return h.wallet(t, wallet.ID)
}

func (h *harness) wallet(t *testing.T, walletID uint64) *entity.Wallet {
	t.Helper()
	ctx := context.Background()
	wallet, err := h.store.GetWalletRepository(ctx).GetByID(ctx, walletID)
	require.NoError(t, err)
	return wallet
}

// assertChain checks that the wallet's transactions form a gapless chain
// ending at the stored balance
func (h *harness) assertChain(t *testing.T, walletID uint64) []*entity.Transaction {
	t.Helper()
	ctx := context.Background()

	txs, err := h.store.GetTransactionRepository(ctx).ListByWallet(ctx, walletID, 0, 10000)
	require.NoError(t, err)

	previous := int64(0)
	for i, tx := range txs {
		assert.Equal(t, previous, tx.BalanceBefore, "transaction %d breaks the chain", i)
		assert.Equal(t, tx.BalanceBefore+tx.SignedAmount(), tx.BalanceAfter)
		previous = tx.BalanceAfter
	}
	assert.Equal(t, previous, h.wallet(t, walletID).Balance())
	return txs
}

func (h *harness) assertOperatingIdentity(t *testing.T) *entity.OperatingBalance {
	t.Helper()
	balance, err := h.ledger.GetOperatingBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, balance.TotalBets-balance.TotalPayouts, balance.OperatingProfit)
	return balance
}

func TestApplyTransactionCredit(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "alice", "100.00")

	tx, err := h.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
		WalletID:    wallet.ID,
		Type:        "credit",
		Amount:      "50.00",
		ReferenceID: " dep-1 ",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TypeCredit, tx.Type)
	assert.Equal(t, int64(5000), tx.Amount)
	assert.Equal(t, int64(10000), tx.BalanceBefore)
	assert.Equal(t, int64(15000), tx.BalanceAfter)
	assert.Equal(t, "dep-1", tx.ReferenceID)

	updated := h.wallet(t, wallet.ID)
	assert.Equal(t, int64(15000), updated.Balance())
	assert.Equal(t, int64(15000), updated.TotalCredits())
	assert.Equal(t, int64(0), updated.TotalDebits())

	h.assertChain(t, wallet.ID)
	balance := h.assertOperatingIdentity(t)
	assert.Equal(t, int64(15000), balance.TotalDeposits)
}

func TestApplyTransactionRejectsInvalidRequests(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "bob", "100.00")

	testCases := []struct {
		name string
		req  usecase.ApplyTransactionRequest
		err  error
	}{
		{"negative debit", usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "debit", Amount: "-5"}, errs.ErrInvalidAmount},
		{"zero amount", usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "credit", Amount: "0"}, errs.ErrInvalidAmount},
		{"three decimals", usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "credit", Amount: "1.005"}, errs.ErrInvalidAmount},
		{"adjustment type", usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "adjustment", Amount: "5"}, errs.ErrInvalidTransactionType},
		{"unknown type", usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "bonus", Amount: "5"}, errs.ErrInvalidTransactionType},
		{"missing wallet", usecase.ApplyTransactionRequest{WalletID: 999, Type: "credit", Amount: "5"}, errs.ErrWalletNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := h.ledger.ApplyTransaction(ctx, tc.req)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, tx)
		})
	}

	unchanged := h.wallet(t, wallet.ID)
	assert.Equal(t, int64(10000), unchanged.Balance())
	assert.Equal(t, uint64(1), unchanged.Version)
	assert.Len(t, h.assertChain(t, wallet.ID), 1)
}

func TestApplyTransactionDebitMayOverdraw(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "erin", "10.00")

	tx, err := h.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "debit",
		Amount:   "25.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-1500), tx.BalanceAfter)

	updated := h.wallet(t, wallet.ID)
	assert.Equal(t, int64(-1500), updated.Balance())
	assert.Equal(t, int64(2500), updated.TotalDebits())
	h.assertChain(t, wallet.ID)
}

func TestAdjustBalance(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "carol", "140.00")

	t.Run("Upward adjustment counts as credit", func(t *testing.T) {
		tx, err := h.ledger.AdjustBalance(ctx, usecase.AdjustBalanceRequest{
			WalletID:      wallet.ID,
			TargetBalance: "500.00",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.TypeAdjustment, tx.Type)
		assert.Equal(t, int64(36000), tx.Amount)
		assert.Equal(t, int64(14000), tx.BalanceBefore)
		assert.Equal(t, int64(50000), tx.BalanceAfter)
		assert.Equal(t, "Balance adjustment to $500.00", tx.Description)

		updated := h.wallet(t, wallet.ID)
		assert.Equal(t, int64(50000), updated.Balance())
		assert.Equal(t, int64(14000+36000), updated.TotalCredits())
	})

	t.Run("Downward adjustment counts as debit", func(t *testing.T) {
		tx, err := h.ledger.AdjustBalance(ctx, usecase.AdjustBalanceRequest{
			WalletID:      wallet.ID,
			TargetBalance: "-20.00",
			Description:   "chargeback",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(52000), tx.Amount)
		assert.Equal(t, int64(-52000), tx.SignedAmount())
		assert.Equal(t, int64(-2000), tx.BalanceAfter)
		assert.Equal(t, "chargeback", tx.Description)
		assert.Equal(t, int64(52000), h.wallet(t, wallet.ID).TotalDebits())
	})

	t.Run("Target equal to balance is rejected", func(t *testing.T) {
		tx, err := h.ledger.AdjustBalance(ctx, usecase.AdjustBalanceRequest{
			WalletID:      wallet.ID,
			TargetBalance: "-20.00",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, tx)

		var balanceErr *errs.BalanceError
		assert.True(t, errors.As(err, &balanceErr))
	})

	h.assertChain(t, wallet.ID)
	balance := h.assertOperatingIdentity(t)
	assert.Equal(t, int64(14000), balance.TotalDeposits)
	assert.Equal(t, int64(0), balance.TotalWithdrawals)
}

func TestDuplicateReferenceIsRejected(t *testing.T) {
	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "dave", "")
	other := h.newWallet(t, "dina", "")

	req := usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "credit", Amount: "10.00", ReferenceID: "psp-77"}
	first, err := h.ledger.ApplyTransaction(ctx, req)
	require.NoError(t, err)

	_, err = h.ledger.ApplyTransaction(ctx, req)
	require.ErrorIs(t, err, errs.ErrDuplicateReference)

	var dupErr *errs.DuplicateReferenceError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, first.ID, dupErr.TransactionID)
	assert.Equal(t, int64(1000), h.wallet(t, wallet.ID).Balance())

	// references are scoped per wallet
	req.WalletID = other.ID
	_, err = h.ledger.ApplyTransaction(ctx, req)
	assert.NoError(t, err)

	require.NoError(t, h.audit.Flush(ctx))
	logs, err := h.ledger.ListSystemLogs(ctx, 0)
	require.NoError(t, err)

	var failures int
	for _, log := range logs {
		if log.Action == entity.ActionBalanceChange && log.CorrelationKey == nil {
			failures++
			assert.Contains(t, log.Description, "Failed credit of $10.00, balance from $10.00 to $10.00 (unchanged)")
			assert.Equal(t, "10.00", log.OldData["balance"])
		}
	}
	assert.Equal(t, 1, failures)
}

func TestConcurrentMutationsOnOneWallet(t *testing.T) {
	for _, sequenced := range []bool{true, false} {
		t.Run(fmt.Sprintf("sequencer=%t", sequenced), func(t *testing.T) {
			cfg := testConfig()
			cfg.SequencerEnabled = sequenced
			h := newHarness(t, cfg)
			wallet := h.newWallet(t, "frank", "100.00")

			const n = 40
			var g errgroup.Group
			for i := 0; i < n; i++ {
				txType := "credit"
				if i%2 == 1 {
					txType = "debit"
				}
				amount := fmt.Sprintf("%d.25", i+1)
				g.Go(func() error {
					_, err := h.ledger.ApplyTransaction(context.Background(), usecase.ApplyTransactionRequest{
						WalletID: wallet.ID,
						Type:     txType,
						Amount:   amount,
					})
					return err
				})
			}
			require.NoError(t, g.Wait())

			expected := int64(10000)
			for i := 0; i < n; i++ {
				amount := int64(i+1)*100 + 25
				if i%2 == 1 {
					amount = -amount
				}
				expected += amount
			}

			txs := h.assertChain(t, wallet.ID)
			assert.Len(t, txs, n+1)
			assert.Equal(t, expected, h.wallet(t, wallet.ID).Balance())
			h.assertOperatingIdentity(t)
		})
	}
}

func TestCancelledCallLeavesNoTrace(t *testing.T) {
	h := newHarness(t, testConfig())
	wallet := h.newWallet(t, "gina", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tx, err := h.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "credit",
		Amount:   "1.00",
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, tx)

	require.NoError(t, h.audit.Flush(context.Background()))
	logs, err := h.ledger.ListSystemLogs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Empty(t, h.assertChain(t, wallet.ID))
}

func TestContinuationFailuresDoNotFailTheMutation(t *testing.T) {
	noop := logger.NewNoopLogger()
	tp := timeadapter.NewRealTimeProvider()
	store := memstore.New(noop)
	ctx := context.Background()

	aggregator := usecasemocks.NewMockAggregator(t)
	aggregator.EXPECT().OnTransactionCommitted(mock.Anything, mock.Anything).
		Return(false, errs.ErrStorageUnavailable).Once()

	auditLogger := usecasemocks.NewMockAuditLogger(t)
	auditLogger.EXPECT().RecordTransaction(mock.Anything, mock.Anything, mock.Anything).
		Return(false, errs.ErrStorageUnavailable).Once()

	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().ObserveMutation("credit", "ok", mock.Anything).Once()
	metrics.EXPECT().IncContinuationFailure("aggregate").Once()
	metrics.EXPECT().IncContinuationFailure("audit").Once()

	ledger := NewService(store, usecasemocks.NewMockGameCatalog(t), aggregator, auditLogger, nil, metrics, tp, noop, testConfig())
	t.Cleanup(ledger.Shutdown)

	user, err := entity.NewUser("hank", "hank@example.com", "", "", tp)
	require.NoError(t, err)
	require.NoError(t, store.GetUserRepository(ctx).Create(ctx, user))
	wallet, err := entity.NewWallet(user.ID, tp)
	require.NoError(t, err)
	require.NoError(t, store.GetWalletRepository(ctx).Create(ctx, wallet))

	tx, err := ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "credit",
		Amount:   "12.50",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1250), tx.BalanceAfter)

	stored, err := store.GetTransactionRepository(ctx).GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.Amount, stored.Amount)
}

func TestListQueriesClampLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, defaultListLimit, clampLimit(-3))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, maxListLimit, clampLimit(5000))

	h := newHarness(t, testConfig())
	ctx := context.Background()
	wallet := h.newWallet(t, "ivy", "1.00")
	_, err := h.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{WalletID: wallet.ID, Type: "credit", Amount: "2.00"})
	require.NoError(t, err)

	txs, err := h.ledger.ListTransactions(ctx, persistence.TransactionFilter{WalletID: &wallet.ID})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Greater(t, txs[0].ID, txs[1].ID)

	got, err := h.ledger.GetWallet(ctx, wallet.UserID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, got.ID)

	_, err = h.ledger.GetWallet(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	_, err = h.ledger.GetWallet(ctx, 4242)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMutationAfterShutdown(t *testing.T) {
	h := newHarness(t, testConfig())
	wallet := h.newWallet(t, "jack", "")
	h.ledger.Shutdown()

	_, err := h.ledger.ApplyTransaction(context.Background(), usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "credit",
		Amount:   "1.00",
	})
	assert.ErrorIs(t, err, errs.ErrLedgerClosed)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "conflict", outcome(errs.ErrConcurrentModification))
	assert.Equal(t, "conflict", outcome(errs.ErrWalletLocked))
	assert.Equal(t, "unavailable", outcome(fmt.Errorf("query: %w", errs.ErrStorageUnavailable)))
	assert.Equal(t, "rejected", outcome(errs.ErrInvalidAmount))
	assert.Equal(t, "rejected", outcome(errs.NewDuplicateReferenceError(1, "r", 2)))
	assert.Equal(t, "error", outcome(errors.New("boom")))
}
