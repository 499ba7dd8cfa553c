package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Connect(ctx, Options{Addr: addr, DB: 15, DialTimeout: time.Second})
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestWalletKey(t *testing.T) {
	assert.Equal(t, "lock:wallet:42", walletKey(42))
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	client := newTestClient(t)
	locker := NewRedisLocker(client, logger.NewNoopLogger())
	ctx := context.Background()
	walletID := uint64(time.Now().UnixNano())
	t.Cleanup(func() { client.Del(ctx, walletKey(walletID)) })

	token, err := locker.AcquireLock(ctx, walletID, 5*time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = locker.AcquireLock(ctx, walletID, 5*time.Second)
	assert.ErrorIs(t, err, errs.ErrWalletLocked)

	// A stale token must not release the current owner's lease
	require.NoError(t, locker.ReleaseLock(ctx, walletID, "stale-token"))
	_, err = locker.AcquireLock(ctx, walletID, 5*time.Second)
	assert.ErrorIs(t, err, errs.ErrWalletLocked)

	require.NoError(t, locker.ReleaseLock(ctx, walletID, token))

	again, err := locker.AcquireLock(ctx, walletID, 5*time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
	require.NoError(t, locker.ReleaseLock(ctx, walletID, again))
}

func TestRedisLocker_LeaseExpires(t *testing.T) {
	client := newTestClient(t)
	locker := NewRedisLocker(client, logger.NewNoopLogger())
	ctx := context.Background()
	walletID := uint64(time.Now().UnixNano())
	t.Cleanup(func() { client.Del(ctx, walletKey(walletID)) })

	_, err := locker.AcquireLock(ctx, walletID, 100*time.Millisecond)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		token, err := locker.AcquireLock(ctx, walletID, time.Second)
		return err == nil && token != ""
	}, 2*time.Second, 50*time.Millisecond)
}
