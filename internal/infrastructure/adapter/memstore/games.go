package memstore

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

type gameRepository struct {
	store *Store
}

func (r *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		s.nextGameID++
		game.ID = s.nextGameID
		stored := *game
		s.games[game.ID] = &stored
		tx.onRollback(func() {
			delete(s.games, stored.ID)
			s.nextGameID--
		})
		return nil
	})
}

func (r *gameRepository) GetByID(ctx context.Context, id uint64) (*entity.Game, error) {
	var game *entity.Game
	err := r.store.run(ctx, func(*memTx) error {
		stored, ok := r.store.games[id]
		if !ok {
			return errs.ErrGameNotFound
		}
		g := *stored
		game = &g
		return nil
	})
	return game, err
}

func (r *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		previous, ok := s.games[game.ID]
		if !ok {
			return errs.ErrGameNotFound
		}
		stored := *game
		s.games[game.ID] = &stored
		tx.onRollback(func() {
			s.games[previous.ID] = previous
		})
		return nil
	})
}

func (r *gameRepository) Delete(ctx context.Context, id uint64) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		previous, ok := s.games[id]
		if !ok {
			return errs.ErrGameNotFound
		}
		delete(s.games, id)
		tx.onRollback(func() {
			s.games[id] = previous
		})
		return nil
	})
}

func (r *gameRepository) List(ctx context.Context, status string) ([]*entity.Game, error) {
	var games []*entity.Game
	err := r.store.run(ctx, func(*memTx) error {
		for _, stored := range r.store.games {
			if status != "" && string(stored.Status) != status {
				continue
			}
			g := *stored
			games = append(games, &g)
		}
		sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
		return nil
	})
	return games, err
}

func (r *gameRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.run(ctx, func(*memTx) error {
		for _, g := range r.store.games {
			if g.IsActive() {
				count++
			}
		}
		return nil
	})
	return count, err
}
