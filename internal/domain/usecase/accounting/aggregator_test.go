package accounting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func fixedClock(t *testing.T, now time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	return tp
}

func TestAggregatorAppliesEachTransactionOnce(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.NewNoopLogger())
	agg := NewAggregator(store, fixedClock(t, time.Now()), logger.NewNoopLogger())

	transactions := []*entity.Transaction{
		{ID: 1, Type: entity.TypeCredit, Amount: 10000},
		{ID: 2, Type: entity.TypeLoss, Amount: 3000},
		{ID: 3, Type: entity.TypeWin, Amount: 2000},
		{ID: 4, Type: entity.TypeDebit, Amount: 500},
		{ID: 5, Type: entity.TypeAdjustment, Amount: 36000, BalanceBefore: 14000, BalanceAfter: 50000},
	}

	for _, tx := range transactions {
		applied, err := agg.OnTransactionCommitted(ctx, tx)
		require.NoError(t, err)
		assert.True(t, applied)
	}

	before, err := agg.GetOperatingBalance(ctx)
	require.NoError(t, err)

	for _, tx := range transactions {
		applied, err := agg.OnTransactionCommitted(ctx, tx)
		require.NoError(t, err)
		assert.False(t, applied, "replay of transaction %d", tx.ID)
	}

	after, err := agg.GetOperatingBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Equal(t, int64(10000), after.TotalDeposits)
	assert.Equal(t, int64(500), after.TotalWithdrawals)
	assert.Equal(t, int64(3000), after.TotalBets)
	assert.Equal(t, int64(2000), after.TotalPayouts)
	assert.Equal(t, int64(1000), after.OperatingProfit)
	assert.True(t, after.IsConsistent())
}

func TestAggregatorRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")

	uow := mockpersistence.NewMockUnitOfWork(t)
	repo := mockpersistence.NewMockOperatingBalanceRepository(t)

	uow.EXPECT().Begin(ctx).Return(txCtx, nil)
	uow.EXPECT().GetOperatingBalanceRepository(txCtx).Return(repo)
	repo.EXPECT().ApplyTransaction(txCtx, uint64(8), entity.OperatingDelta{Bets: 700}, mock.Anything).
		Return(false, errors.New("lock wait timeout"))
	uow.EXPECT().Rollback(txCtx).Return(nil)

	agg := NewAggregator(uow, fixedClock(t, time.Now()), logger.NewNoopLogger())
	applied, err := agg.OnTransactionCommitted(ctx, &entity.Transaction{ID: 8, Type: entity.TypeLoss, Amount: 700})

	assert.Error(t, err)
	assert.False(t, applied)
}
