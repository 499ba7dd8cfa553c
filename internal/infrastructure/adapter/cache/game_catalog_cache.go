// Package cache adds an in-process read-through cache in front of the game catalog.
package cache

import (
	"context"
	"maps"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	gameKeyPrefix = "game:"
	listKeyPrefix = "games:"
)

// CachedGameCatalog serves game reads from memory and invalidates on writes.
// Games are copied in and out so callers cannot mutate cached entries.
type CachedGameCatalog struct {
	next   usecase.GameCatalog
	cache  *gocache.Cache
	logger coreport.Logger
}

var _ usecase.GameCatalog = (*CachedGameCatalog)(nil)

// NewCachedGameCatalog wraps next with a cache whose entries live for ttl
func NewCachedGameCatalog(next usecase.GameCatalog, ttl, cleanupInterval time.Duration, logger coreport.Logger) *CachedGameCatalog {
	return &CachedGameCatalog{
		next:   next,
		cache:  gocache.New(ttl, cleanupInterval),
		logger: logger,
	}
}

func gameKey(id uint64) string {
	return gameKeyPrefix + strconv.FormatUint(id, 10)
}

func copyGame(g *entity.Game) *entity.Game {
	c := *g
	c.Rules = maps.Clone(g.Rules)
	return &c
}

func copyGames(games []*entity.Game) []*entity.Game {
	out := make([]*entity.Game, len(games))
	for i, g := range games {
		out[i] = copyGame(g)
	}
	return out
}

// invalidate drops the game and every cached listing
func (c *CachedGameCatalog) invalidate(id uint64) {
	c.cache.Delete(gameKey(id))
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, listKeyPrefix) {
			c.cache.Delete(key)
		}
	}
}

func (c *CachedGameCatalog) CreateGame(ctx context.Context, req usecase.GameRequest) (*entity.Game, error) {
	game, err := c.next.CreateGame(ctx, req)
	if err != nil {
		return nil, err
	}
	c.invalidate(game.ID)
	return game, nil
}

func (c *CachedGameCatalog) UpdateGame(ctx context.Context, gameID uint64, req usecase.GameRequest) (*entity.Game, error) {
	game, err := c.next.UpdateGame(ctx, gameID, req)
	c.invalidate(gameID)
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (c *CachedGameCatalog) DeleteGame(ctx context.Context, gameID uint64) error {
	err := c.next.DeleteGame(ctx, gameID)
	c.invalidate(gameID)
	return err
}

// GetGame returns the cached game or loads it. Misses are not cached.
func (c *CachedGameCatalog) GetGame(ctx context.Context, gameID uint64) (*entity.Game, error) {
	if cached, ok := c.cache.Get(gameKey(gameID)); ok {
		return copyGame(cached.(*entity.Game)), nil
	}

	game, err := c.next.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(gameKey(gameID), copyGame(game))
	c.logger.Debug("Game cached", map[string]any{"game_id": gameID})
	return game, nil
}

func (c *CachedGameCatalog) ListGames(ctx context.Context, status string) ([]*entity.Game, error) {
	key := listKeyPrefix + status
	if cached, ok := c.cache.Get(key); ok {
		return copyGames(cached.([]*entity.Game)), nil
	}

	games, err := c.next.ListGames(ctx, status)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, copyGames(games))
	return games, nil
}

// ValidateBet checks the bet against the cached game
func (c *CachedGameCatalog) ValidateBet(ctx context.Context, gameID uint64, betAmount int64) (*entity.Game, error) {
	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := game.ValidateBet(betAmount); err != nil {
		return nil, err
	}
	return game, nil
}

func (c *CachedGameCatalog) SeedDefaultGames(ctx context.Context) error {
	err := c.next.SeedDefaultGames(ctx)
	c.cache.Flush()
	return err
}
