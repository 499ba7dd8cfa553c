package ledger

import (
	"context"
	"math/rand/v2"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for conflict retries
type RetryConfig struct {
	MaxRetries    int
	RetryInterval coreport.Duration
	MaxInterval   coreport.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// retryOnConflict re-runs operation while it fails with ErrConcurrentModification,
// at most cfg.MaxRetries extra times. Waits between attempts honor ctx.
func retryOnConflict(
	ctx context.Context,
	cfg RetryConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	operation func(attempt int) error,
) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = operation(attempt)
		if err == nil || !errs.IsConcurrentModificationError(err) {
			return err
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		metrics.IncConflictRetry()
		backoff := backoffWithJitter(attempt, cfg)
		logger.Debug("Concurrent modification, retrying", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": cfg.MaxRetries,
			"retry_after": backoff.Std().String(),
		})

		select {
		case <-timeProvider.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	logger.Warn("Conflict retries exhausted", map[string]any{
		"max_retries": cfg.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// backoffWithJitter computes interval * 2^attempt capped at MaxInterval, plus jitter
func backoffWithJitter(attempt int, cfg RetryConfig) coreport.Duration {
	backoff := cfg.RetryInterval * (1 << uint(attempt))
	if cfg.MaxInterval > 0 && (backoff > cfg.MaxInterval || backoff <= 0) {
		backoff = cfg.MaxInterval
	}

	if cfg.JitterFactor > 0 {
		backoff += coreport.Duration(float64(backoff) * cfg.JitterFactor * rand.Float64())
	}
	return backoff
}
