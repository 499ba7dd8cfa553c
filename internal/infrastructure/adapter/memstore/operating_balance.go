package memstore

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

type operatingBalanceRepository struct {
	store *Store
}

func (r *operatingBalanceRepository) Get(ctx context.Context) (*entity.OperatingBalance, error) {
	var balance entity.OperatingBalance
	err := r.store.run(ctx, func(*memTx) error {
		balance = r.store.operating
		return nil
	})
	return &balance, err
}

func (r *operatingBalanceRepository) ApplyTransaction(ctx context.Context, transactionID uint64, delta entity.OperatingDelta, now time.Time) (bool, error) {
	applied := false
	err := r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		if _, done := s.appliedTxs[transactionID]; done {
			return nil
		}
		previous := s.operating
		s.appliedTxs[transactionID] = struct{}{}
		s.operating.Apply(delta, now)
		applied = true

		tx.onRollback(func() {
			delete(s.appliedTxs, transactionID)
			s.operating = previous
		})
		return nil
	})
	return applied, err
}

// SaveCheckpoint never moves the checkpoint backwards
func (r *operatingBalanceRepository) SaveCheckpoint(ctx context.Context, transactionID uint64) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		previous := s.operating.LastReconciledTransactionID
		if transactionID <= previous {
			return nil
		}
		s.operating.LastReconciledTransactionID = transactionID
		tx.onRollback(func() {
			s.operating.LastReconciledTransactionID = previous
		})
		return nil
	})
}
