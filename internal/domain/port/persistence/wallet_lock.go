package persistence

import (
	"context"
	"time"
)

// WalletLocker provides a cross-process mutual exclusion scope per wallet
type WalletLocker interface {
	// AcquireLock takes the lock for walletID for at most ttl and returns the
	// owner token needed to release it
	//
	// Possible errors:
	// - ErrWalletLocked: If another owner holds an unexpired lock
	// - ErrStorageUnavailable: If the lock backend is unreachable
	AcquireLock(ctx context.Context, walletID uint64, ttl time.Duration) (string, error)

	// ReleaseLock releases the lock if token still owns it
	ReleaseLock(ctx context.Context, walletID uint64, token string) error
}
