package database

import (
	"context"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
)

// maxConnectBackoff caps the wait between connection attempts
const maxConnectBackoff = 30 * time.Second

// connectBackoff doubles base per attempt up to maxConnectBackoff and adds up
// to 20% jitter so replicas started together do not reconnect in lockstep
func connectBackoff(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	wait := base
	for i := 0; i < attempt && wait < maxConnectBackoff; i++ {
		wait *= 2
	}
	wait = min(wait, maxConnectBackoff)
	return wait + time.Duration(rand.Float64()*0.2*float64(wait))
}

// openWithRetry calls open until it succeeds, fails permanently, or the
// configured attempts run out. Only transient errors are retried.
func openWithRetry(ctx context.Context, config *Config, logger coreport.Logger, open func() (*gorm.DB, error)) (*gorm.DB, error) {
	attempts := max(config.RetryAttempts, 1)

	for attempt := 0; ; attempt++ {
		db, err := open()
		if err == nil {
			return db, nil
		}
		if attempt+1 >= attempts || !repository.IsTransientError(err) {
			logger.Error("Database connection failed", map[string]any{
				"attempts": attempt + 1,
				"error":    err.Error(),
			})
			return nil, err
		}

		wait := connectBackoff(attempt, config.RetryDelay)
		logger.Warn("Database not reachable yet, retrying", map[string]any{
			"attempt":     attempt + 1,
			"attempts":    attempts,
			"retry_after": wait.String(),
			"error":       err.Error(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}
