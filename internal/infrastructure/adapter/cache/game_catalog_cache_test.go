package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

func testGame(id uint64) *entity.Game {
	return &entity.Game{
		ID:     id,
		Name:   "Dice",
		MinBet: 100,
		MaxBet: 10000,
		Odds:   decimal.RequireFromString("1.95"),
		Status: entity.GameStatusActive,
		Rules:  map[string]any{"sides": 6},
	}
}

func newTestCache(t *testing.T) (*CachedGameCatalog, *usecasemocks.MockGameCatalog) {
	inner := usecasemocks.NewMockGameCatalog(t)
	return NewCachedGameCatalog(inner, time.Minute, time.Minute, logger.NewNoopLogger()), inner
}

func TestCachedGameCatalog_GetGameHitsInnerOnce(t *testing.T) {
	c, inner := newTestCache(t)
	ctx := context.Background()
	inner.EXPECT().GetGame(mock.Anything, uint64(1)).Return(testGame(1), nil).Once()

	first, err := c.GetGame(ctx, 1)
	require.NoError(t, err)
	second, err := c.GetGame(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)

	// Mutating a returned game leaves the cached copy intact
	second.Rules["sides"] = 20
	third, err := c.GetGame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, third.Rules["sides"])
}

func TestCachedGameCatalog_MissIsNotCached(t *testing.T) {
	c, inner := newTestCache(t)
	ctx := context.Background()
	inner.EXPECT().GetGame(mock.Anything, uint64(9)).Return(nil, errs.ErrGameNotFound).Twice()

	_, err := c.GetGame(ctx, 9)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
	_, err = c.GetGame(ctx, 9)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
}

func TestCachedGameCatalog_ValidateBet(t *testing.T) {
	c, inner := newTestCache(t)
	ctx := context.Background()
	inner.EXPECT().GetGame(mock.Anything, uint64(1)).Return(testGame(1), nil).Once()

	game, err := c.ValidateBet(ctx, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), game.ID)

	_, err = c.ValidateBet(ctx, 1, 50)
	assert.ErrorIs(t, err, errs.ErrBetOutOfRange)

	_, err = c.ValidateBet(ctx, 1, 20000)
	assert.ErrorIs(t, err, errs.ErrBetOutOfRange)
}

func TestCachedGameCatalog_UpdateInvalidates(t *testing.T) {
	c, inner := newTestCache(t)
	ctx := context.Background()

	inactive := testGame(1)
	inactive.Status = entity.GameStatusInactive

	inner.EXPECT().GetGame(mock.Anything, uint64(1)).Return(testGame(1), nil).Once()
	inner.EXPECT().ListGames(mock.Anything, "").Return([]*entity.Game{testGame(1)}, nil).Once()
	inner.EXPECT().UpdateGame(mock.Anything, uint64(1), mock.Anything).Return(inactive, nil).Once()

	_, err := c.GetGame(ctx, 1)
	require.NoError(t, err)
	_, err = c.ListGames(ctx, "")
	require.NoError(t, err)

	_, err = c.UpdateGame(ctx, 1, usecase.GameRequest{Status: "inactive"})
	require.NoError(t, err)

	inner.EXPECT().GetGame(mock.Anything, uint64(1)).Return(inactive, nil).Once()
	inner.EXPECT().ListGames(mock.Anything, "").Return([]*entity.Game{inactive}, nil).Once()

	_, err = c.ValidateBet(ctx, 1, 500)
	assert.ErrorIs(t, err, errs.ErrGameNotActive)

	games, err := c.ListGames(ctx, "")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, entity.GameStatusInactive, games[0].Status)
}

func TestCachedGameCatalog_DeleteAndSeedInvalidate(t *testing.T) {
	c, inner := newTestCache(t)
	ctx := context.Background()

	inner.EXPECT().ListGames(mock.Anything, "active").Return([]*entity.Game{testGame(1)}, nil).Once()
	inner.EXPECT().DeleteGame(mock.Anything, uint64(1)).Return(nil).Once()
	inner.EXPECT().SeedDefaultGames(mock.Anything).Return(nil).Once()

	_, err := c.ListGames(ctx, "active")
	require.NoError(t, err)
	require.NoError(t, c.DeleteGame(ctx, 1))

	inner.EXPECT().ListGames(mock.Anything, "active").Return([]*entity.Game{}, nil).Once()
	games, err := c.ListGames(ctx, "active")
	require.NoError(t, err)
	assert.Empty(t, games)

	require.NoError(t, c.SeedDefaultGames(ctx))
	inner.EXPECT().ListGames(mock.Anything, "active").Return([]*entity.Game{testGame(2)}, nil).Once()
	games, err = c.ListGames(ctx, "active")
	require.NoError(t, err)
	assert.Len(t, games, 1)
}
