package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

type transactionRepository struct {
	store *Store
}

func copyTransaction(t *entity.Transaction) *entity.Transaction {
	c := *t
	if t.GameID != nil {
		id := *t.GameID
		c.GameID = &id
	}
	return &c
}

// Create appends to the log. Transaction ids equal their position plus one.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		if _, ok := s.wallets[transaction.WalletID]; !ok {
			return errs.ErrWalletNotFound
		}

		index := len(s.transactions)
		transaction.ID = uint64(index + 1)
		s.transactions = append(s.transactions, copyTransaction(transaction))
		s.walletTxs[transaction.WalletID] = append(s.walletTxs[transaction.WalletID], index)

		walletID := transaction.WalletID
		tx.onRollback(func() {
			s.transactions = s.transactions[:index]
			ids := s.walletTxs[walletID]
			s.walletTxs[walletID] = ids[:len(ids)-1]
		})
		return nil
	})
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transaction *entity.Transaction
	err := r.store.run(ctx, func(*memTx) error {
		if id == 0 || id > uint64(len(r.store.transactions)) {
			return errs.ErrNotFound
		}
		transaction = copyTransaction(r.store.transactions[id-1])
		return nil
	})
	return transaction, err
}

func (r *transactionRepository) FindByReference(ctx context.Context, walletID uint64, referenceID string, since time.Time) (*entity.Transaction, bool, error) {
	var found *entity.Transaction
	err := r.store.run(ctx, func(*memTx) error {
		indexes := r.store.walletTxs[walletID]
		for i := len(indexes) - 1; i >= 0; i-- {
			t := r.store.transactions[indexes[i]]
			if t.CreatedAt.Before(since) {
				break
			}
			if t.ReferenceID == referenceID {
				found = copyTransaction(t)
				return nil
			}
		}
		return nil
	})
	return found, found != nil, err
}

func matchesFilter(t *entity.Transaction, filter persistence.TransactionFilter) bool {
	if filter.UserID != nil && t.UserID != *filter.UserID {
		return false
	}
	if filter.WalletID != nil && t.WalletID != *filter.WalletID {
		return false
	}
	if filter.GameID != nil && (t.GameID == nil || *t.GameID != *filter.GameID) {
		return false
	}
	return true
}

func (r *transactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	err := r.store.run(ctx, func(*memTx) error {
		for i := len(r.store.transactions) - 1; i >= 0; i-- {
			if filter.Limit > 0 && len(result) == filter.Limit {
				break
			}
			if t := r.store.transactions[i]; matchesFilter(t, filter) {
				result = append(result, copyTransaction(t))
			}
		}
		return nil
	})
	return result, err
}

func (r *transactionRepository) ListAfter(ctx context.Context, afterID uint64, createdBefore time.Time, limit int) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	err := r.store.run(ctx, func(*memTx) error {
		for i := int(afterID); i < len(r.store.transactions); i++ {
			if limit > 0 && len(result) == limit {
				break
			}
			t := r.store.transactions[i]
			if !t.CreatedAt.Before(createdBefore) {
				break
			}
			result = append(result, copyTransaction(t))
		}
		return nil
	})
	return result, err
}

func (r *transactionRepository) ListByWallet(ctx context.Context, walletID uint64, afterID uint64, limit int) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	err := r.store.run(ctx, func(*memTx) error {
		for _, index := range r.store.walletTxs[walletID] {
			if limit > 0 && len(result) == limit {
				break
			}
			if t := r.store.transactions[index]; t.ID > afterID {
				result = append(result, copyTransaction(t))
			}
		}
		return nil
	})
	return result, err
}

func (r *transactionRepository) Totals(ctx context.Context, from, to time.Time) ([]entity.TransactionTotals, error) {
	var totals []entity.TransactionTotals
	err := r.store.run(ctx, func(*memTx) error {
		byType := make(map[entity.TransactionType]*entity.TransactionTotals)
		for _, t := range r.store.transactions {
			if t.CreatedAt.Before(from) || !t.CreatedAt.Before(to) {
				continue
			}
			sum, ok := byType[t.Type]
			if !ok {
				sum = &entity.TransactionTotals{Type: t.Type}
				byType[t.Type] = sum
			}
			sum.Count++
			sum.Amount += t.Amount
		}
		for _, sum := range byType {
			totals = append(totals, *sum)
		}
		sort.Slice(totals, func(i, j int) bool { return totals[i].Type < totals[j].Type })
		return nil
	})
	return totals, err
}
