package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func TestCheckReference(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	handler := NewIdempotencyHandler(24*coreport.Hour, tp)

	t.Run("Payment references are checked within the window", func(t *testing.T) {
		repo := mockpersistence.NewMockTransactionRepository(t)
		repo.EXPECT().FindByReference(ctx, uint64(1), "pay-1", now.Add(-24*time.Hour)).Return(nil, false, nil).Once()

		assert.NoError(t, handler.CheckReference(ctx, repo, 1, "pay-1"))
	})

	t.Run("Round references are checked against all history", func(t *testing.T) {
		repo := mockpersistence.NewMockTransactionRepository(t)
		repo.EXPECT().FindByReference(ctx, uint64(1), RoundReference("r-9"), time.Time{}).
			Return(&entity.Transaction{ID: 4}, true, nil).Once()

		err := handler.CheckReference(ctx, repo, 1, RoundReference("r-9"))
		require.ErrorIs(t, err, errs.ErrDuplicateReference)

		var dupErr *errs.DuplicateReferenceError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, uint64(4), dupErr.TransactionID)
	})

	t.Run("Empty reference skips the lookup", func(t *testing.T) {
		repo := mockpersistence.NewMockTransactionRepository(t)

		assert.NoError(t, handler.CheckReference(ctx, repo, 1, ""))
	})
}
