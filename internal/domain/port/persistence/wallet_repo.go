package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// WalletRepository stores wallet balances. Only the balance mutator writes balances.
type WalletRepository interface {
	// Create saves a new wallet and assigns its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the user already owns a wallet
	Create(ctx context.Context, wallet *entity.Wallet) error

	// GetByID retrieves a wallet by ID
	//
	// Possible errors:
	// - ErrWalletNotFound: If wallet doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Wallet, error)

	// GetByUserID retrieves the wallet owned by a user
	//
	// Possible errors:
	// - ErrWalletNotFound: If the user has no wallet
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// GetForUpdate retrieves a wallet and locks its row until the surrounding
	// transaction ends. Must be called with a transactional context.
	//
	// Possible errors:
	// - ErrWalletNotFound: If wallet doesn't exist
	// - ErrConcurrentModification: If the row lock could not be taken (deadlock, serialization)
	GetForUpdate(ctx context.Context, id uint64) (*entity.Wallet, error)

	// UpdateBalance writes the wallet's balance and totals only if the stored
	// version still equals expectedVersion (compare-and-swap)
	//
	// Possible errors:
	// - ErrConcurrentModification: If the stored version moved on
	// - ErrStorageUnavailable: If the store times out or is unreachable
	UpdateBalance(ctx context.Context, wallet *entity.Wallet, expectedVersion uint64) error

	// List returns wallets with ID greater than afterID in ascending ID order
	List(ctx context.Context, afterID uint64, limit int) ([]*entity.Wallet, error)
}
