package memstore

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

type walletRepository struct {
	store *Store
}

func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		if _, ok := s.users[wallet.UserID]; !ok {
			return errs.ErrUserNotFound
		}
		if _, exists := s.walletsByUser[wallet.UserID]; exists {
			return errs.ErrConstraintViolation
		}

		s.nextWalletID++
		wallet.ID = s.nextWalletID
		stored := *wallet
		s.wallets[wallet.ID] = &stored
		s.walletsByUser[wallet.UserID] = wallet.ID

		tx.onRollback(func() {
			delete(s.wallets, stored.ID)
			delete(s.walletsByUser, stored.UserID)
			s.nextWalletID--
		})
		return nil
	})
}

func (r *walletRepository) get(id uint64) (*entity.Wallet, error) {
	stored, ok := r.store.wallets[id]
	if !ok {
		return nil, errs.ErrWalletNotFound
	}
	w := *stored
	return &w, nil
}

func (r *walletRepository) GetByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var wallet *entity.Wallet
	err := r.store.run(ctx, func(*memTx) error {
		var err error
		wallet, err = r.get(id)
		return err
	})
	return wallet, err
}

func (r *walletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var wallet *entity.Wallet
	err := r.store.run(ctx, func(*memTx) error {
		id, ok := r.store.walletsByUser[userID]
		if !ok {
			return errs.ErrWalletNotFound
		}
		var err error
		wallet, err = r.get(id)
		return err
	})
	return wallet, err
}

// GetForUpdate reads the wallet; the open unit of work already excludes other writers
func (r *walletRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *walletRepository) UpdateBalance(ctx context.Context, wallet *entity.Wallet, expectedVersion uint64) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		previous, ok := s.wallets[wallet.ID]
		if !ok {
			return errs.ErrWalletNotFound
		}
		if previous.Version != expectedVersion {
			return errs.ErrConcurrentModification
		}

		stored := *wallet
		s.wallets[wallet.ID] = &stored
		tx.onRollback(func() {
			s.wallets[previous.ID] = previous
		})
		return nil
	})
}

func (r *walletRepository) List(ctx context.Context, afterID uint64, limit int) ([]*entity.Wallet, error) {
	var wallets []*entity.Wallet
	err := r.store.run(ctx, func(*memTx) error {
		for id, stored := range r.store.wallets {
			if id > afterID {
				w := *stored
				wallets = append(wallets, &w)
			}
		}
		sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
		wallets = wallets[:clampLimit(limit, len(wallets))]
		return nil
	})
	return wallets, err
}
