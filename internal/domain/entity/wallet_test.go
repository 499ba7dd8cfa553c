package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestNewWallet(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid wallet creation", func(t *testing.T) {
		wallet, err := NewWallet(7, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), wallet.UserID)
		assert.Equal(t, int64(0), wallet.Balance())
		assert.Equal(t, "0.00", wallet.GetBalance())
		assert.Equal(t, uint64(0), wallet.Version)
		assert.Equal(t, fixedTime, wallet.CreatedAt)
	})

	t.Run("Zero user ID should return error", func(t *testing.T) {
		wallet, err := NewWallet(0, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, wallet)
	})
}

func TestWalletApplyDelta(t *testing.T) {
	initialTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := initialTime.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(updateTime).Maybe()

	t.Run("Positive delta increases total credits", func(t *testing.T) {
		wallet := RestoreWallet(1, 1, 10000, 0, 0, 3, initialTime, initialTime)

		require.NoError(t, wallet.ApplyDelta(5000, mockTime))

		assert.Equal(t, int64(15000), wallet.Balance())
		assert.Equal(t, int64(5000), wallet.TotalCredits())
		assert.Equal(t, int64(0), wallet.TotalDebits())
		assert.Equal(t, uint64(4), wallet.Version)
		assert.Equal(t, updateTime, wallet.UpdatedAt)
	})

	t.Run("Negative delta increases total debits and may go below zero", func(t *testing.T) {
		wallet := RestoreWallet(1, 1, 1000, 0, 0, 0, initialTime, initialTime)

		require.NoError(t, wallet.ApplyDelta(-2500, mockTime))

		assert.Equal(t, int64(-1500), wallet.Balance())
		assert.Equal(t, "-15.00", wallet.GetBalance())
		assert.Equal(t, int64(2500), wallet.TotalDebits())
	})

	t.Run("Zero delta is rejected", func(t *testing.T) {
		wallet := RestoreWallet(1, 1, 1000, 0, 0, 0, initialTime, initialTime)

		assert.ErrorIs(t, wallet.ApplyDelta(0, mockTime), errs.ErrInvalidAmount)
		assert.Equal(t, uint64(0), wallet.Version)
	})

	t.Run("Overflow leaves the wallet untouched", func(t *testing.T) {
		wallet := RestoreWallet(1, 1, math.MaxInt64-1, 0, 0, 2, initialTime, initialTime)

		assert.ErrorIs(t, wallet.ApplyDelta(10, mockTime), errs.ErrAmountOverflow)
		assert.Equal(t, int64(math.MaxInt64-1), wallet.Balance())
		assert.Equal(t, int64(0), wallet.TotalCredits())
		assert.Equal(t, uint64(2), wallet.Version)
	})

	t.Run("Totals are monotonic across mixed deltas", func(t *testing.T) {
		wallet := RestoreWallet(1, 1, 0, 0, 0, 0, initialTime, initialTime)
		deltas := []int64{100, -40, 250, -310, 5}

		var prevCredits, prevDebits int64
		for _, d := range deltas {
			require.NoError(t, wallet.ApplyDelta(d, mockTime))
			assert.GreaterOrEqual(t, wallet.TotalCredits(), prevCredits)
			assert.GreaterOrEqual(t, wallet.TotalDebits(), prevDebits)
			prevCredits, prevDebits = wallet.TotalCredits(), wallet.TotalDebits()
		}

		assert.Equal(t, int64(5), wallet.Balance())
		assert.Equal(t, wallet.TotalCredits()-wallet.TotalDebits(), wallet.Balance())
	})
}
