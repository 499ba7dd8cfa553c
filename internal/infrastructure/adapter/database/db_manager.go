package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
)

// ErrNoSQLDatabase is returned for SQL-only features on the memory driver
var ErrNoSQLDatabase = errors.New("operation requires a sql database driver")

// Option customizes a Manager
type Option func(*Manager)

// WithQueryObserver reports every executed statement to observer
func WithQueryObserver(observer QueryObserver) Option {
	return func(m *Manager) { m.queryObserver = observer }
}

// WithPoolObserver samples the connection pool into observer every interval
func WithPoolObserver(observer PoolObserver, interval time.Duration) Option {
	return func(m *Manager) {
		m.poolObserver = observer
		m.poolInterval = interval
	}
}

// Manager owns the ledger store: a gorm connection for the sql drivers or
// the in-process store for the memory driver
type Manager struct {
	config        *Config
	db            *gorm.DB
	store         *memstore.Store
	uow           persistence.UnitOfWork
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	migrationMgr  *migration.MigrationManager
	pool          *poolMonitor
	queryObserver QueryObserver
	poolObserver  PoolObserver
	poolInterval  time.Duration
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...Option) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		poolInterval: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the store, retrying transient connection failures
func (m *Manager) Connect(ctx context.Context) error {
	if err := m.config.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	if m.config.Driver == DriverMemory {
		m.store = memstore.New(m.logger.Named("memstore"))
		m.uow = m.store
		m.logger.Info("Using in-memory ledger store", nil)
		return nil
	}

	isolation, err := ParseIsolation(m.config.Isolation)
	if err != nil {
		return err
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver":    m.config.Driver,
		"host":      m.config.Host,
		"port":      m.config.Port,
		"name":      m.config.Database,
		"isolation": isolation.String(),
	})

	dialector, err := openDialector(m.config)
	if err != nil {
		return err
	}

	gormDB, err := openWithRetry(ctx, m.config, m.logger, func() (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{
			Logger: NewDatabaseLogger(m.logger.Named("gorm"), m.timeProvider, m.config.LogLevel, m.config.SlowThreshold, m.queryObserver),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt:    true,
			TranslateError: true,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", repository.MapError(err, nil))
	}

	if err := configurePool(gormDB, m.config); err != nil {
		return repository.MapError(err, nil)
	}

	m.db = gormDB
	m.uow = NewUnitOfWork(gormDB, m.logger, isolation)
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger.Named("migration"), m.timeProvider)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	if m.poolObserver != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return repository.MapError(err, nil)
		}
		m.pool = startPoolMonitor(sqlDB, m.logger.Named("pool"), m.poolObserver, m.poolInterval)
	}

	return nil
}

// DB returns the GORM database instance, nil for the memory driver
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured driver name
func (m *Manager) Driver() string {
	return m.config.Driver
}

// UnitOfWork returns the store's unit of work
func (m *Manager) UnitOfWork() persistence.UnitOfWork {
	return m.uow
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return nil
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// SchemaVersion returns the applied schema version
func (m *Manager) SchemaVersion(ctx context.Context) (string, error) {
	if m.migrationMgr == nil {
		return "", ErrNoSQLDatabase
	}
	return m.migrationMgr.GetCurrentVersion(ctx)
}

// WalletLockRepository returns the lease table locker
func (m *Manager) WalletLockRepository() (*repository.WalletLockRepository, error) {
	if m.db == nil {
		return nil, ErrNoSQLDatabase
	}
	return repository.NewWalletLockRepository(m.db, m.timeProvider, m.logger.Named("wallet_lock")), nil
}

// Ping reports whether the store is reachable within the query timeout.
// The memory store is always reachable.
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return repository.MapError(err, nil)
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		m.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
		return repository.MapError(err, nil)
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.pool != nil {
		m.pool.shutdown()
		m.pool = nil
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

