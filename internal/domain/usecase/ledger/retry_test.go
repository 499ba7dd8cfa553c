package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func instantTimer(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().After(mock.Anything).RunAndReturn(func(coreport.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}).Maybe()
	return tp
}

func TestRetryOnConflict(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, RetryInterval: coreport.Millisecond, MaxInterval: 10 * coreport.Millisecond}

	t.Run("Succeeds after conflicts", func(t *testing.T) {
		metrics := coremocks.NewMockMetrics(t)
		metrics.EXPECT().IncConflictRetry().Times(2)

		attempts := 0
		err := retryOnConflict(context.Background(), cfg, instantTimer(t), logger.NewNoopLogger(), metrics, func(attempt int) error {
			assert.Equal(t, attempts, attempt)
			attempts++
			if attempts < 3 {
				return fmt.Errorf("cas: %w", errs.ErrConcurrentModification)
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		metrics := coremocks.NewMockMetrics(t)
		metrics.EXPECT().IncConflictRetry().Times(3)

		attempts := 0
		err := retryOnConflict(context.Background(), cfg, instantTimer(t), logger.NewNoopLogger(), metrics, func(int) error {
			attempts++
			return errs.ErrConcurrentModification
		})

		assert.ErrorIs(t, err, errs.ErrConcurrentModification)
		assert.Equal(t, 4, attempts)
	})

	t.Run("Other errors are not retried", func(t *testing.T) {
		metrics := coremocks.NewMockMetrics(t)

		attempts := 0
		err := retryOnConflict(context.Background(), cfg, instantTimer(t), logger.NewNoopLogger(), metrics, func(int) error {
			attempts++
			return errs.ErrStorageUnavailable
		})

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Cancellation stops the wait", func(t *testing.T) {
		metrics := coremocks.NewMockMetrics(t)
		metrics.EXPECT().IncConflictRetry().Once()

		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().After(mock.Anything).Return(make(chan time.Time)).Once()

		ctx, cancel := context.WithCancel(context.Background())
		err := retryOnConflict(ctx, cfg, tp, logger.NewNoopLogger(), metrics, func(int) error {
			cancel()
			return errs.ErrConcurrentModification
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * coreport.Millisecond, MaxInterval: 50 * coreport.Millisecond}

	assert.Equal(t, 10*coreport.Millisecond, backoffWithJitter(0, cfg))
	assert.Equal(t, 20*coreport.Millisecond, backoffWithJitter(1, cfg))
	assert.Equal(t, 40*coreport.Millisecond, backoffWithJitter(2, cfg))
	assert.Equal(t, 50*coreport.Millisecond, backoffWithJitter(3, cfg))
	assert.Equal(t, 50*coreport.Millisecond, backoffWithJitter(70, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := backoffWithJitter(1, cfg)
		assert.GreaterOrEqual(t, backoff, 20*coreport.Millisecond)
		assert.LessOrEqual(t, backoff, 30*coreport.Millisecond)
	}
}
