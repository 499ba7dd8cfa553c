package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/wallet-ledger/mocks/port/persistence"
)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *memstore.Store) {
	t.Helper()
	store := memstore.New(logger.NewNoopLogger())
	l := NewLogger(store, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger(), cfg)
	t.Cleanup(func() { _ = l.Close() })
	return l, store
}

func TestLoggerLogCarriesActor(t *testing.T) {
	l, _ := newTestLogger(t, DefaultConfig())

	adminID := uint64(42)
	ctx := coreport.WithActor(context.Background(), coreport.Actor{UserID: &adminID, IPAddress: "10.0.0.8"})
	l.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionCreate,
		EntityType:  entity.EntityGame,
		EntityID:    "3",
		Description: "Created game Lucky Dice",
		NewData:     map[string]any{"name": "Lucky Dice"},
	})

	require.NoError(t, l.Flush(context.Background()))

	logs, err := l.ListSystemLogs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionCreate, logs[0].Action)
	assert.Equal(t, "10.0.0.8", logs[0].IPAddress)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, adminID, *logs[0].UserID)
	assert.Nil(t, logs[0].CorrelationKey)
}

func TestLoggerWritesInlineAfterClose(t *testing.T) {
	l, _ := newTestLogger(t, Config{QueueSize: 1, WriteTimeout: coreport.Second})
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	l.Log(context.Background(), usecase.AuditEntry{Action: entity.ActionLogout, EntityType: entity.EntityUser, EntityID: "1"})

	logs, err := l.ListSystemLogs(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestLoggerRecordTransactionIsIdempotent(t *testing.T) {
	l, _ := newTestLogger(t, DefaultConfig())

	tx := &entity.Transaction{
		ID:            9,
		WalletID:      4,
		UserID:        2,
		Type:          entity.TypeAdjustment,
		Amount:        36000,
		BalanceBefore: 14000,
		BalanceAfter:  50000,
		CreatedAt:     time.Now(),
	}

	created, err := l.RecordTransaction(context.Background(), tx, coreport.Actor{IPAddress: "127.0.0.1"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = l.RecordTransaction(context.Background(), tx, coreport.Actor{})
	require.NoError(t, err)
	assert.False(t, created)

	logs, err := l.ListSystemLogs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionBalanceChange, logs[0].Action)
	assert.Equal(t, "Balance updated from $140.00 to $500.00", logs[0].Description)
	assert.Equal(t, "4", logs[0].EntityID)
	assert.Equal(t, "140.00", logs[0].OldData["balance"])
	assert.Equal(t, "500.00", logs[0].NewData["balance"])
	require.NotNil(t, logs[0].CorrelationKey)
	assert.Equal(t, "transaction:9", *logs[0].CorrelationKey)
}

func TestLoggerWriteFailureIsLogged(t *testing.T) {
	uow := mockpersistence.NewMockUnitOfWork(t)
	repo := mockpersistence.NewMockSystemLogRepository(t)
	mockLogger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetSystemLogRepository(mock.Anything).Return(repo)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.SystemLog")).Return(false, errors.New("disk full"))
	mockLogger.EXPECT().Error("Failed to write audit entry", mock.Anything).Once()

	l := NewLogger(uow, timeadapter.NewRealTimeProvider(), mockLogger, DefaultConfig())
	l.Log(context.Background(), usecase.AuditEntry{Action: entity.ActionDelete, EntityType: entity.EntityGame, EntityID: "5"})
	require.NoError(t, l.Flush(context.Background()))
	require.NoError(t, l.Close())
}

func TestLoggerListClampsLimit(t *testing.T) {
	uow := mockpersistence.NewMockUnitOfWork(t)
	repo := mockpersistence.NewMockSystemLogRepository(t)

	uow.EXPECT().GetSystemLogRepository(mock.Anything).Return(repo)
	repo.EXPECT().List(mock.Anything, maxListLimit).Return(nil, nil).Once()
	repo.EXPECT().List(mock.Anything, defaultListLimit).Return(nil, nil).Once()

	l := NewLogger(uow, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger(), DefaultConfig())
	defer l.Close()

	_, err := l.ListSystemLogs(context.Background(), 5000)
	require.NoError(t, err)
	_, err = l.ListSystemLogs(context.Background(), -1)
	require.NoError(t, err)
}
