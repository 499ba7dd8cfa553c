package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// GameRequest carries catalog attributes. Money fields are decimal strings.
type GameRequest struct {
	Name        string
	Description string
	Category    string
	MinBet      string
	MaxBet      string
	Odds        string
	Status      string
	Rules       map[string]any
	ImageURL    string
}

// GameCatalog manages games and enforces their bet policy
type GameCatalog interface {
	CreateGame(ctx context.Context, req GameRequest) (*entity.Game, error)
	UpdateGame(ctx context.Context, gameID uint64, req GameRequest) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID uint64) error
	GetGame(ctx context.Context, gameID uint64) (*entity.Game, error)

	// ListGames lists games; an empty status lists all of them
	ListGames(ctx context.Context, status string) ([]*entity.Game, error)

	// ValidateBet loads the game and checks that it accepts the bet
	//
	// Possible errors:
	// - ErrGameNotFound: If game doesn't exist
	// - ErrGameNotActive: If game status is not active
	// - ErrBetOutOfRange: If bet is outside [min_bet, max_bet]
	ValidateBet(ctx context.Context, gameID uint64, betAmount int64) (*entity.Game, error)

	// SeedDefaultGames creates the development catalog if it is empty
	SeedDefaultGames(ctx context.Context) error
}
