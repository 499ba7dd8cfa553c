package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// WalletLockRepository implements WalletLocker with a lease table
type WalletLockRepository struct {
	repositoryBase
	timeProvider coreport.TimeProvider
}

var _ persistence.WalletLocker = (*WalletLockRepository)(nil)

// NewWalletLockRepository creates a new WalletLockRepository instance
func NewWalletLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletLockRepository {
	return &WalletLockRepository{
		repositoryBase: newRepositoryBase(db, logger),
		timeProvider:   timeProvider,
	}
}

// AcquireLock takes the lease on a wallet. An expired lease is removed first;
// the insert then either wins or finds a live owner.
func (r *WalletLockRepository) AcquireLock(ctx context.Context, walletID uint64, ttl time.Duration) (string, error) {
	now := r.timeProvider.Now()
	token := uuid.NewString()
	db := r.db.WithContext(ctx)

	if err := db.Where("wallet_id = ? AND expires_at <= ?", walletID, now).Delete(&model.WalletLock{}).Error; err != nil {
		return "", r.handleDatabaseError("clearing expired wallet lock", err, nil, map[string]any{
			"wallet_id": walletID,
		})
	}

	lock := model.WalletLock{
		WalletID:  walletID,
		Token:     token,
		LockedAt:  now,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&lock)
	if result.Error != nil {
		return "", r.handleDatabaseError("acquiring wallet lock", result.Error, nil, map[string]any{
			"wallet_id": walletID,
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Debug("Wallet is locked by another owner", map[string]any{
			"wallet_id": walletID,
		})
		return "", errs.ErrWalletLocked
	}

	r.logger.Debug("Wallet lock acquired", map[string]any{
		"wallet_id":  walletID,
		"expires_at": lock.ExpiresAt,
	})
	return token, nil
}

// ReleaseLock releases the lease if token still owns it
func (r *WalletLockRepository) ReleaseLock(ctx context.Context, walletID uint64, token string) error {
	result := r.db.WithContext(ctx).
		Where("wallet_id = ? AND token = ?", walletID, token).
		Delete(&model.WalletLock{})

	// The lease expires on its own; a timed out release is not fatal
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing wallet lock, lock will expire automatically", map[string]any{
			"wallet_id": walletID,
			"error":     result.Error.Error(),
		})
		return nil
	}
	if result.Error != nil {
		return r.handleDatabaseError("releasing wallet lock", result.Error, nil, map[string]any{
			"wallet_id": walletID,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No wallet lock to release, it may have expired", map[string]any{
			"wallet_id": walletID,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *WalletLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.timeProvider.Now()).Delete(&model.WalletLock{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("cleaning up wallet locks", result.Error, nil, nil)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Expired wallet locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
