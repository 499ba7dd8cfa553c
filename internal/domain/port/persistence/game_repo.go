package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// GameRepository stores the game catalog
type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error

	// GetByID retrieves a game by ID
	//
	// Possible errors:
	// - ErrGameNotFound: If game doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Game, error)

	// Update saves catalog changes
	//
	// Possible errors:
	// - ErrGameNotFound: If game doesn't exist
	Update(ctx context.Context, game *entity.Game) error

	// Delete removes a game from the catalog. Rounds and transactions that
	// reference it are kept.
	//
	// Possible errors:
	// - ErrGameNotFound: If game doesn't exist
	Delete(ctx context.Context, id uint64) error

	// List returns games ordered by name; an empty status lists all games
	List(ctx context.Context, status string) ([]*entity.Game, error)

	// CountActive returns the number of games open for play
	CountActive(ctx context.Context) (int64, error)
}
