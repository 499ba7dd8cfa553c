package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// TransactionFilter narrows transaction listings; nil fields are not applied
type TransactionFilter struct {
	UserID   *uint64
	WalletID *uint64
	GameID   *uint64
	Limit    int
}

// TransactionRepository is the append-only ledger of balance changes
type TransactionRepository interface {
	// Create appends a transaction and assigns its ID. Rows are never updated.
	//
	// Possible errors:
	// - ErrWalletNotFound: If the referenced wallet does not exist
	// - ErrStorageUnavailable: If the store times out or is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrNotFound: If the transaction doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// FindByReference looks for a transaction on the wallet carrying referenceID
	// created at or after since. The bool reports whether one was found.
	FindByReference(ctx context.Context, walletID uint64, referenceID string, since time.Time) (*entity.Transaction, bool, error)

	// List returns transactions matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// ListAfter returns transactions with ID greater than afterID created
	// before the cutoff, in ascending ID order
	ListAfter(ctx context.Context, afterID uint64, createdBefore time.Time, limit int) ([]*entity.Transaction, error)

	// ListByWallet returns a wallet's transactions with ID greater than afterID
	// in ascending ID order
	ListByWallet(ctx context.Context, walletID uint64, afterID uint64, limit int) ([]*entity.Transaction, error)

	// Totals sums transactions per type over [from, to)
	Totals(ctx context.Context, from, to time.Time) ([]entity.TransactionTotals, error)
}
