package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/accounting"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func withLocker(t *testing.T, h *harness, locker *mockpersistence.MockWalletLocker) *Service {
	t.Helper()
	noop := logger.NewNoopLogger()
	ledger := NewService(h.store, h.catalog, accounting.NewAggregator(h.store, h.tp, noop),
		h.audit, locker, quietMetrics(t), h.tp, noop, testConfig())
	t.Cleanup(ledger.Shutdown)
	return ledger
}

func TestMutationTakesWalletLock(t *testing.T) {
	h := newHarness(t, testConfig())
	wallet := h.newWallet(t, "sam", "")

	locker := mockpersistence.NewMockWalletLocker(t)
	locker.EXPECT().AcquireLock(mock.Anything, wallet.ID, 10*time.Second).Return("", errs.ErrWalletLocked).Once()
	locker.EXPECT().AcquireLock(mock.Anything, wallet.ID, 10*time.Second).Return("token-1", nil).Once()
	locker.EXPECT().ReleaseLock(mock.Anything, wallet.ID, "token-1").Return(nil).Once()

	ledger := withLocker(t, h, locker)
	tx, err := ledger.ApplyTransaction(context.Background(), usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "credit",
		Amount:   "3.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), tx.BalanceAfter)
}

func TestMutationFailsWhileWalletStaysLocked(t *testing.T) {
	h := newHarness(t, testConfig())
	wallet := h.newWallet(t, "tess", "1.00")

	locker := mockpersistence.NewMockWalletLocker(t)
	locker.EXPECT().AcquireLock(mock.Anything, wallet.ID, mock.Anything).Return("", errs.ErrWalletLocked).Times(4)

	ledger := withLocker(t, h, locker)
	tx, err := ledger.ApplyTransaction(context.Background(), usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "debit",
		Amount:   "1.00",
	})
	assert.ErrorIs(t, err, errs.ErrWalletLocked)
	assert.NotErrorIs(t, err, errs.ErrConcurrentModification)
	assert.Nil(t, tx)
	assert.Equal(t, int64(100), h.wallet(t, wallet.ID).Balance())
}

func TestReleaseFailureDoesNotFailTheMutation(t *testing.T) {
	h := newHarness(t, testConfig())
	wallet := h.newWallet(t, "uma", "")

	locker := mockpersistence.NewMockWalletLocker(t)
	locker.EXPECT().AcquireLock(mock.Anything, wallet.ID, mock.Anything).Return("token-2", nil).Once()
	locker.EXPECT().ReleaseLock(mock.Anything, wallet.ID, "token-2").Return(errs.ErrStorageUnavailable).Once()

	ledger := withLocker(t, h, locker)
	_, err := ledger.ApplyTransaction(context.Background(), usecase.ApplyTransactionRequest{
		WalletID: wallet.ID,
		Type:     "credit",
		Amount:   "3.00",
	})
	assert.NoError(t, err)
}
