package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// CreateUserRequest describes a new platform user. InitialBalance is optional.
type CreateUserRequest struct {
	Username       string
	Email          string
	FullName       string
	AvatarURL      string
	InitialBalance string
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser creates a user together with its wallet. A non-zero initial
	// balance is recorded as a credit on the new wallet.
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, *entity.Wallet, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// UpdateStatus changes a user's account status
	UpdateStatus(ctx context.Context, userID uint64, status string) (*entity.User, error)

	// CreateDefaultUsers creates the development users if they do not exist
	CreateDefaultUsers(ctx context.Context) error
}
