package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

func newTestCatalog(t *testing.T) (*Catalog, *usecasemocks.MockAuditLogger) {
	t.Helper()
	noop := logger.NewNoopLogger()
	audit := usecasemocks.NewMockAuditLogger(t)
	return NewCatalog(memstore.New(noop), audit, timeadapter.NewRealTimeProvider(), noop), audit
}

func diceRequest() usecase.GameRequest {
	return usecase.GameRequest{
		Name:     "Lucky Dice",
		Category: "dice",
		MinBet:   "1.00",
		MaxBet:   "100.00",
		Odds:     "2.00",
	}
}

func TestCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and audits", func(t *testing.T) {
		catalog, audit := newTestCatalog(t)
		audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
			return e.Action == entity.ActionCreate && e.NewData["min_bet"] == "1.00" && e.OldData == nil
		})).Once()

		game, err := catalog.CreateGame(ctx, diceRequest())
		require.NoError(t, err)
		assert.NotZero(t, game.ID)
		assert.Equal(t, int64(100), game.MinBet)
		assert.Equal(t, int64(10000), game.MaxBet)
		assert.Equal(t, entity.GameStatusActive, game.Status)
	})

	t.Run("Rejects invalid attributes", func(t *testing.T) {
		catalog, _ := newTestCatalog(t)

		testCases := []struct {
			name   string
			mutate func(*usecase.GameRequest)
		}{
			{"bad min bet", func(r *usecase.GameRequest) { r.MinBet = "abc" }},
			{"zero max bet", func(r *usecase.GameRequest) { r.MaxBet = "0" }},
			{"max below min", func(r *usecase.GameRequest) { r.MaxBet = "0.50" }},
			{"bad odds", func(r *usecase.GameRequest) { r.Odds = "high" }},
			{"negative odds", func(r *usecase.GameRequest) { r.Odds = "-2" }},
			{"unknown status", func(r *usecase.GameRequest) { r.Status = "retired" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := diceRequest()
				tc.mutate(&req)
				_, err := catalog.CreateGame(ctx, req)
				assert.ErrorIs(t, err, errs.ErrInvalidGameData)
			})
		}
	})
}

func TestUpdateAndDeleteGame(t *testing.T) {
	ctx := context.Background()
	catalog, audit := newTestCatalog(t)
	audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
		return e.Action == entity.ActionCreate
	})).Once()

	game, err := catalog.CreateGame(ctx, diceRequest())
	require.NoError(t, err)

	audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
		return e.Action == entity.ActionUpdate &&
			e.OldData["status"] == "active" &&
			e.NewData["status"] == "maintenance"
	})).Once()

	req := diceRequest()
	req.Status = "maintenance"
	updated, err := catalog.UpdateGame(ctx, game.ID, req)
	require.NoError(t, err)
	assert.Equal(t, entity.GameStatusMaintenance, updated.Status)

	_, err = catalog.ValidateBet(ctx, game.ID, 500)
	assert.ErrorIs(t, err, errs.ErrGameNotActive)

	active, err := catalog.ListGames(ctx, "active")
	require.NoError(t, err)
	assert.Empty(t, active)

	audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
		return e.Action == entity.ActionDelete && e.OldData["name"] == "Lucky Dice"
	})).Once()
	require.NoError(t, catalog.DeleteGame(ctx, game.ID))

	_, err = catalog.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
	assert.ErrorIs(t, catalog.DeleteGame(ctx, game.ID), errs.ErrNotFound)

	_, err = catalog.UpdateGame(ctx, game.ID, diceRequest())
	assert.ErrorIs(t, err, errs.ErrGameNotFound)
}

func TestValidateBet(t *testing.T) {
	ctx := context.Background()
	catalog, audit := newTestCatalog(t)
	audit.EXPECT().Log(mock.Anything, mock.Anything).Maybe()

	game, err := catalog.CreateGame(ctx, diceRequest())
	require.NoError(t, err)

	got, err := catalog.ValidateBet(ctx, game.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, game.ID, got.ID)

	_, err = catalog.ValidateBet(ctx, game.ID, 10001)
	assert.ErrorIs(t, err, errs.ErrBetOutOfRange)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = catalog.ValidateBet(ctx, 999, 100)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)

	_, err = catalog.ListGames(ctx, "bogus")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestSeedDefaultGames(t *testing.T) {
	ctx := context.Background()
	catalog, audit := newTestCatalog(t)
	audit.EXPECT().Log(mock.Anything, mock.Anything).Times(len(defaultGames))

	require.NoError(t, catalog.SeedDefaultGames(ctx))
	require.NoError(t, catalog.SeedDefaultGames(ctx))

	games, err := catalog.ListGames(ctx, "")
	require.NoError(t, err)
	assert.Len(t, games, len(defaultGames))
}
