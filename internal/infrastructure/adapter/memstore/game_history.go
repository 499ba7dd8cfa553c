package memstore

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

type gameHistoryRepository struct {
	store *Store
}

// roundKey scopes a round id to the player who recorded it
type roundKey struct {
	userID  uint64
	roundID string
}

func (r *gameHistoryRepository) Create(ctx context.Context, history *entity.GameHistory) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		key := roundKey{userID: history.UserID, roundID: history.RoundID}
		if history.RoundID != "" {
			if _, exists := s.roundIDs[key]; exists {
				return errs.ErrConstraintViolation
			}
			s.roundIDs[key] = len(s.histories)
		}

		s.nextHistoryID++
		history.ID = s.nextHistoryID
		stored := *history
		s.histories = append(s.histories, &stored)

		count := len(s.histories) - 1
		tx.onRollback(func() {
			s.histories = s.histories[:count]
			delete(s.roundIDs, key)
			s.nextHistoryID--
		})
		return nil
	})
}

func (r *gameHistoryRepository) FindByRound(ctx context.Context, userID uint64, roundID string) (*entity.GameHistory, bool, error) {
	var (
		found *entity.GameHistory
		ok    bool
	)
	err := r.store.run(ctx, func(*memTx) error {
		idx, exists := r.store.roundIDs[roundKey{userID: userID, roundID: roundID}]
		if !exists {
			return nil
		}
		c := *r.store.histories[idx]
		found, ok = &c, true
		return nil
	})
	return found, ok, err
}

func (r *gameHistoryRepository) List(ctx context.Context, filter persistence.GameHistoryFilter) ([]*entity.GameHistory, error) {
	var result []*entity.GameHistory
	err := r.store.run(ctx, func(*memTx) error {
		for i := len(r.store.histories) - 1; i >= 0; i-- {
			if filter.Limit > 0 && len(result) == filter.Limit {
				break
			}
			h := r.store.histories[i]
			if filter.UserID != nil && h.UserID != *filter.UserID {
				continue
			}
			if filter.GameID != nil && h.GameID != *filter.GameID {
				continue
			}
			c := *h
			result = append(result, &c)
		}
		return nil
	})
	return result, err
}

func (r *gameHistoryRepository) Totals(ctx context.Context, from, to time.Time) (entity.GamePlayTotals, error) {
	var totals entity.GamePlayTotals
	err := r.store.run(ctx, func(*memTx) error {
		for _, h := range r.store.histories {
			if h.PlayedAt.Before(from) || !h.PlayedAt.Before(to) {
				continue
			}
			totals.Rounds++
			totals.BetAmount += h.BetAmount
			totals.WinAmount += h.WinAmount
			if h.Result == entity.ResultWin {
				totals.Wins++
			} else {
				totals.LossAmount += h.BetAmount
			}
		}
		return nil
	})
	return totals, err
}
