package database

import (
	"database/sql"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// poolSaturation is the in-use share of MaxOpenConns above which a sample is logged
const poolSaturation = 0.8

// poolMonitor feeds sql.DBStats samples to a PoolObserver until stopped
type poolMonitor struct {
	db       *sql.DB
	logger   coreport.Logger
	observer PoolObserver
	stop     chan struct{}
	done     chan struct{}
}

func startPoolMonitor(db *sql.DB, logger coreport.Logger, observer PoolObserver, interval time.Duration) *poolMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	pm := &poolMonitor{
		db:       db,
		logger:   logger,
		observer: observer,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	pm.sample()

	go func() {
		defer close(pm.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pm.sample()
			case <-pm.stop:
				return
			}
		}
	}()
	return pm
}

func (pm *poolMonitor) sample() {
	stats := pm.db.Stats()
	pm.observer.ObservePool(stats)

	if saturated(stats) {
		pm.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}

// shutdown stops sampling and waits for the loop to exit
func (pm *poolMonitor) shutdown() {
	close(pm.stop)
	<-pm.done
}

func saturated(stats sql.DBStats) bool {
	if stats.MaxOpenConnections <= 0 {
		return false
	}
	return float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolSaturation
}
