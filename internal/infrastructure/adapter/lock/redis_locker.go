// Package lock holds the redis implementation of the cross-process wallet lock.
package lock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

const keyPrefix = "lock:wallet:"

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements WalletLocker with SET NX PX leases
type RedisLocker struct {
	client redis.UniversalClient
	logger coreport.Logger
}

var _ persistence.WalletLocker = (*RedisLocker)(nil)

// NewRedisLocker creates a locker on an existing client
func NewRedisLocker(client redis.UniversalClient, logger coreport.Logger) *RedisLocker {
	return &RedisLocker{client: client, logger: logger}
}

// Options configures the redis connection
type Options struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// Connect opens a client and checks it with PING
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: failed to connect to redis: %v", errs.ErrStorageUnavailable, err)
	}
	return client, nil
}

func walletKey(walletID uint64) string {
	return keyPrefix + strconv.FormatUint(walletID, 10)
}

// AcquireLock takes the lease on a wallet for ttl
func (l *RedisLocker) AcquireLock(ctx context.Context, walletID uint64, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, walletKey(walletID), token, ttl).Result()
	if err != nil {
		l.logger.Error("Failed to acquire wallet lock", map[string]any{
			"wallet_id": walletID,
			"error":     err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if !ok {
		return "", errs.ErrWalletLocked
	}

	l.logger.Debug("Wallet lock acquired", map[string]any{
		"wallet_id": walletID,
		"ttl":       ttl.String(),
	})
	return token, nil
}

// ReleaseLock releases the lease if token still owns it
func (l *RedisLocker) ReleaseLock(ctx context.Context, walletID uint64, token string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{walletKey(walletID)}, token).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	if deleted == 0 {
		l.logger.Debug("No wallet lock to release, it may have expired", map[string]any{
			"wallet_id": walletID,
		})
	}
	return nil
}
