package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// GameHistoryFilter narrows game history listings; nil fields are not applied
type GameHistoryFilter struct {
	UserID *uint64
	GameID *uint64
	Limit  int
}

// GameHistoryRepository stores played rounds
type GameHistoryRepository interface {
	// Create appends a round and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user already recorded the round id
	// - ErrStorageUnavailable: If the store times out or is unreachable
	Create(ctx context.Context, history *entity.GameHistory) error

	// FindByRound looks up the user's record of a round
	FindByRound(ctx context.Context, userID uint64, roundID string) (*entity.GameHistory, bool, error)

	// List returns rounds matching the filter, newest first
	List(ctx context.Context, filter GameHistoryFilter) ([]*entity.GameHistory, error)

	// Totals summarizes rounds played in [from, to)
	Totals(ctx context.Context, from, to time.Time) (entity.GamePlayTotals, error)
}
