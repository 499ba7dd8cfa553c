package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
)

func TestConnectBackoff(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		base    time.Duration
		min     time.Duration
	}{
		{name: "first attempt", attempt: 0, base: time.Second, min: time.Second},
		{name: "doubles", attempt: 2, base: time.Second, min: 4 * time.Second},
		{name: "capped", attempt: 10, base: time.Second, min: maxConnectBackoff},
		{name: "zero base defaults to a second", attempt: 0, base: 0, min: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wait := connectBackoff(tt.attempt, tt.base)
			assert.GreaterOrEqual(t, wait, tt.min)
			assert.LessOrEqual(t, wait, tt.min+tt.min/5)
		})
	}
}

func TestOpenWithRetry(t *testing.T) {
	ctx := context.Background()
	cfg := &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}

	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		db, err := openWithRetry(ctx, cfg, logger.NewNoopLogger(), func() (*gorm.DB, error) {
			calls++
			if calls < 3 {
				return nil, context.DeadlineExceeded
			}
			return &gorm.DB{}, nil
		})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		permanent := errors.New("password authentication failed")
		_, err := openWithRetry(ctx, cfg, logger.NewNoopLogger(), func() (*gorm.DB, error) {
			calls++
			return nil, permanent
		})
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		calls := 0
		_, err := openWithRetry(ctx, cfg, logger.NewNoopLogger(), func() (*gorm.DB, error) {
			calls++
			return nil, driver.ErrBadConn
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		slow := &Config{RetryAttempts: 5, RetryDelay: time.Hour}
		_, err := openWithRetry(cancelled, slow, logger.NewNoopLogger(), func() (*gorm.DB, error) {
			return nil, context.DeadlineExceeded
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
