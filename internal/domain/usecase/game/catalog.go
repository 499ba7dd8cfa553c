package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// defaultGames is the development catalog
var defaultGames = []usecase.GameRequest{
	{
		Name: "Lucky Dice", Category: "dice", MinBet: "1.00", MaxBet: "500.00", Odds: "2.00",
		Description: "Roll two dice and beat the house total",
		Rules:       map[string]any{"dice": 2, "sides": 6},
	},
	{
		Name: "Coin Flip", Category: "coin", MinBet: "0.50", MaxBet: "1000.00", Odds: "1.95",
		Description: "Call heads or tails",
		Rules:       map[string]any{"sides": []string{"heads", "tails"}},
	},
	{
		Name: "Roulette", Category: "table", MinBet: "1.00", MaxBet: "2000.00", Odds: "36.00",
		Description: "European single zero roulette",
		Rules:       map[string]any{"pockets": 37},
	},
	{
		Name: "Slots Classic", Category: "slots", MinBet: "0.10", MaxBet: "100.00", Odds: "10.00",
		Description: "Three reel classic slot",
		Rules:       map[string]any{"reels": 3, "paylines": 5},
	},
}

// Catalog manages the game catalog and enforces its bet policy
type Catalog struct {
	uow          persistence.UnitOfWork
	audit        usecase.AuditLogger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.GameCatalog = (*Catalog)(nil)

// NewCatalog creates a new Catalog
func NewCatalog(
	uow persistence.UnitOfWork,
	audit usecase.AuditLogger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Catalog {
	return &Catalog{
		uow:          uow,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// parseAttributes converts a request's decimal strings into catalog attributes
func parseAttributes(req usecase.GameRequest) (entity.GameAttributes, error) {
	minBet, err := entity.ValidatePositiveAmount(req.MinBet)
	if err != nil {
		return entity.GameAttributes{}, fmt.Errorf("%w: min_bet: %v", errs.ErrInvalidGameData, err)
	}
	maxBet, err := entity.ValidatePositiveAmount(req.MaxBet)
	if err != nil {
		return entity.GameAttributes{}, fmt.Errorf("%w: max_bet: %v", errs.ErrInvalidGameData, err)
	}
	odds, err := decimal.NewFromString(strings.TrimSpace(req.Odds))
	if err != nil {
		return entity.GameAttributes{}, fmt.Errorf("%w: odds must be a decimal", errs.ErrInvalidGameData)
	}

	return entity.GameAttributes{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MinBet:      minBet,
		MaxBet:      maxBet,
		Odds:        odds,
		Status:      strings.TrimSpace(req.Status),
		Rules:       req.Rules,
		ImageURL:    req.ImageURL,
	}, nil
}

// CreateGame adds a game to the catalog
func (c *Catalog) CreateGame(ctx context.Context, req usecase.GameRequest) (*entity.Game, error) {
	attrs, err := parseAttributes(req)
	if err != nil {
		return nil, err
	}
	game, err := entity.NewGame(attrs, c.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := c.uow.GetGameRepository(ctx).Create(ctx, game); err != nil {
		c.logger.Error("Failed to create game", map[string]any{
			"name":  game.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	c.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionCreate,
		EntityType:  entity.EntityGame,
		EntityID:    strconv.FormatUint(game.ID, 10),
		Description: fmt.Sprintf("Created game %s", game.Name),
		NewData:     game.Snapshot(),
	})
	c.logger.Info("Game created", map[string]any{
		"gameId": game.ID,
		"name":   game.Name,
	})
	return game, nil
}

// UpdateGame replaces a game's attributes
func (c *Catalog) UpdateGame(ctx context.Context, gameID uint64, req usecase.GameRequest) (*entity.Game, error) {
	attrs, err := parseAttributes(req)
	if err != nil {
		return nil, err
	}

	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if attrs.Status == "" {
		attrs.Status = string(game.Status)
	}

	oldData := game.Snapshot()
	if err := game.Update(attrs, c.timeProvider); err != nil {
		return nil, err
	}
	if err := c.uow.GetGameRepository(ctx).Update(ctx, game); err != nil {
		return nil, err
	}

	c.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionUpdate,
		EntityType:  entity.EntityGame,
		EntityID:    strconv.FormatUint(game.ID, 10),
		Description: fmt.Sprintf("Updated game %s", game.Name),
		OldData:     oldData,
		NewData:     game.Snapshot(),
	})
	return game, nil
}

// DeleteGame removes a game. Its history and transactions keep the dangling id.
func (c *Catalog) DeleteGame(ctx context.Context, gameID uint64) error {
	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if err := c.uow.GetGameRepository(ctx).Delete(ctx, gameID); err != nil {
		return err
	}

	c.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionDelete,
		EntityType:  entity.EntityGame,
		EntityID:    strconv.FormatUint(gameID, 10),
		Description: fmt.Sprintf("Deleted game %s", game.Name),
		OldData:     game.Snapshot(),
	})
	c.logger.Info("Game deleted", map[string]any{
		"gameId": gameID,
	})
	return nil
}

// GetGame returns a game by ID
func (c *Catalog) GetGame(ctx context.Context, gameID uint64) (*entity.Game, error) {
	if gameID == 0 {
		return nil, errs.ErrGameNotFound
	}
	return c.uow.GetGameRepository(ctx).GetByID(ctx, gameID)
}

// ListGames lists games; an empty status lists all of them
func (c *Catalog) ListGames(ctx context.Context, status string) ([]*entity.Game, error) {
	status = strings.TrimSpace(status)
	if status != "" && !entity.IsValidGameStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %s", errs.ErrInvalidRequest, status)
	}
	return c.uow.GetGameRepository(ctx).List(ctx, status)
}

// ValidateBet loads the game and checks that it accepts the bet
func (c *Catalog) ValidateBet(ctx context.Context, gameID uint64, betAmount int64) (*entity.Game, error) {
	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := game.ValidateBet(betAmount); err != nil {
		return nil, err
	}
	return game, nil
}

// SeedDefaultGames creates the development catalog if it is empty
func (c *Catalog) SeedDefaultGames(ctx context.Context) error {
	existing, err := c.uow.GetGameRepository(ctx).List(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, req := range defaultGames {
		if _, err := c.CreateGame(ctx, req); err != nil {
			return err
		}
	}
	c.logger.Info("Default games created", map[string]any{
		"count": len(defaultGames),
	})
	return nil
}
