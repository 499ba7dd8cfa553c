// Package app assembles the ledger from configuration. Both the API server
// and ledgerctl build their object graph here.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/accounting"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/audit"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// Lock backends
const (
	LockBackendNone     = "none"
	LockBackendDatabase = "database"
	LockBackendRedis    = "redis"
)

// App is the assembled ledger
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider

	DB         *database.Manager
	Prometheus *metrics.PrometheusMetrics // nil when metrics are disabled
	Metrics    coreport.Metrics

	Audit      *audit.Logger
	Catalog    usecase.GameCatalog
	Aggregator *accounting.Aggregator
	Ledger     *ledger.Service
	Users      *user.UserUseCase
	Reports    *report.ReportUseCase
	Reconciler *accounting.Reconciler

	dbLocks     *repository.WalletLockRepository
	redisClient *redis.Client
}

// New connects the store and builds every component. The caller owns Close.
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger) (*App, error) {
	a := &App{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeadapter.NewRealTimeProvider(),
	}

	var dbOpts []database.Option
	if cfg.Metrics.Enabled {
		a.Prometheus = metrics.NewPrometheusMetrics(cfg.Metrics.Namespace)
		a.Metrics = a.Prometheus
		dbOpts = append(dbOpts,
			database.WithQueryObserver(a.Prometheus),
			database.WithPoolObserver(a.Prometheus, cfg.Metrics.PoolInterval))
	} else {
		a.Metrics = metrics.NewNoopMetrics()
	}

	a.DB = database.NewManager(database.CreateConfigFromAppConfig(cfg), logger.Named("database"), a.TimeProvider, dbOpts...)
	if err := a.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := a.DB.Migrate(ctx); err != nil {
			_ = a.DB.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	locker, err := a.newLocker(ctx)
	if err != nil {
		_ = a.DB.Close()
		return nil, err
	}

	a.build(locker)
	return a, nil
}

// newLocker returns the cross-process wallet lock, or nil for the none backend
func (a *App) newLocker(ctx context.Context) (persistence.WalletLocker, error) {
	cfg := a.Config
	switch cfg.Ledger.LockBackend {
	case LockBackendDatabase:
		locks, err := a.DB.WalletLockRepository()
		if err != nil {
			return nil, err
		}
		a.dbLocks = locks
		return locks, nil
	case LockBackendRedis:
		client, err := lock.Connect(ctx, lock.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			PoolSize:    cfg.Redis.PoolSize,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redisClient = client
		return lock.NewRedisLocker(client, a.Logger.Named("redis_lock")), nil
	default:
		return nil, nil
	}
}

func (a *App) build(locker persistence.WalletLocker) {
	cfg := a.Config
	uow := a.DB.UnitOfWork()
	tp := a.TimeProvider

	a.Audit = audit.NewLogger(uow, tp, a.Logger.Named("audit"), audit.Config{
		QueueSize:    cfg.Ledger.AuditQueueSize,
		WriteTimeout: coreport.Duration(cfg.Database.QueryTimeout),
	})

	var catalog usecase.GameCatalog = game.NewCatalog(uow, a.Audit, tp, a.Logger.Named("catalog"))
	if cfg.Cache.Enabled {
		catalog = cache.NewCachedGameCatalog(catalog, cfg.Cache.GameTTL, cfg.Cache.CleanupInterval, a.Logger.Named("catalog_cache"))
	}
	a.Catalog = catalog

	a.Aggregator = accounting.NewAggregator(uow, tp, a.Logger.Named("aggregator"))

	a.Ledger = ledger.NewService(uow, a.Catalog, a.Aggregator, a.Audit, locker, a.Metrics, tp, a.Logger.Named("ledger"), LedgerConfig(cfg))
	a.Users = user.NewUserUseCase(uow, a.Ledger, a.Audit, tp, a.Logger.Named("users"))
	a.Reports = report.NewReportUseCase(uow, a.Audit, tp, a.Logger.Named("reports"), cfg.Ledger.DashboardWindow)
	a.Reconciler = accounting.NewReconciler(uow, a.Aggregator, a.Audit, a.Metrics, tp, a.Logger.Named("reconciler"), accounting.ReconcilerConfig{
		Interval:  coreport.Duration(cfg.Ledger.ReconcileInterval),
		Grace:     coreport.Duration(cfg.Ledger.ReconcileGrace),
		BatchSize: cfg.Ledger.ReconcileBatchSize,
	})
}

// LedgerConfig maps the ledger section of the configuration
func LedgerConfig(cfg *config.Config) ledger.Config {
	lc := ledger.DefaultConfig()
	lc.Retry.MaxRetries = cfg.Ledger.MaxConflictRetries
	if cfg.Ledger.RetryInterval > 0 {
		lc.Retry.RetryInterval = coreport.Duration(cfg.Ledger.RetryInterval)
	}
	if cfg.Ledger.RetryMaxInterval > 0 {
		lc.Retry.MaxInterval = coreport.Duration(cfg.Ledger.RetryMaxInterval)
	}
	lc.DuplicateWindow = coreport.Duration(cfg.Ledger.DuplicateWindow)
	lc.QueryTimeout = coreport.Duration(cfg.Database.QueryTimeout)
	if cfg.Ledger.LockTTL > 0 {
		lc.LockTTL = coreport.Duration(cfg.Ledger.LockTTL)
	}
	lc.SequencerEnabled = cfg.Ledger.SequencerEnabled
	if cfg.Ledger.SequencerQueueSize > 0 {
		lc.SequencerQueueSize = cfg.Ledger.SequencerQueueSize
	}
	if cfg.Ledger.SequencerIdleTimeout > 0 {
		lc.SequencerIdleTimeout = coreport.Duration(cfg.Ledger.SequencerIdleTimeout)
	}
	if cfg.Ledger.HistoryWriteRetries >= 0 {
		lc.HistoryWriteRetries = cfg.Ledger.HistoryWriteRetries
	}
	return lc
}

// Seed creates the development catalog and users
func (a *App) Seed(ctx context.Context) error {
	return migration.SeedDevelopmentData(ctx, a.Catalog, a.Users)
}

// RunLockJanitor deletes expired wallet leases until ctx is done. It returns
// immediately unless the database lock backend is in use.
func (a *App) RunLockJanitor(ctx context.Context, interval time.Duration) error {
	if a.dbLocks == nil {
		return nil
	}
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		removed, err := a.dbLocks.CleanupExpiredLocks(ctx)
		if err != nil && ctx.Err() == nil {
			a.Logger.Warn("Failed to clean up expired wallet locks", map[string]any{"error": err.Error()})
			continue
		}
		if removed > 0 {
			a.Logger.Debug("Expired wallet locks removed", map[string]any{"count": removed})
		}
	}
}

// Close drains the ledger and audit queues, then releases connections
func (a *App) Close() error {
	var errList []error

	if a.Ledger != nil {
		a.Ledger.Shutdown()
	}
	if a.Audit != nil {
		if err := a.Audit.Close(); err != nil {
			errList = append(errList, fmt.Errorf("audit logger: %w", err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errList = append(errList, fmt.Errorf("redis: %w", err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errList = append(errList, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errList...)
}
