package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// UserRepository stores platform users
type UserRepository interface {
	// Create saves a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If username or email is already taken
	// - ErrStorageUnavailable: If the store times out or is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStorageUnavailable: If the store times out or is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Update saves profile and status changes
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrStorageUnavailable: If the store times out or is unreachable
	Update(ctx context.Context, user *entity.User) error

	// Count returns the number of registered users
	Count(ctx context.Context) (int64, error)
}
