package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Cache       CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql or memory
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Isolation       string        `mapstructure:"isolation"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
	SeedData        bool          `mapstructure:"seedData"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LedgerConfig contains balance mutation and accounting settings
type LedgerConfig struct {
	SequencerEnabled     bool          `mapstructure:"sequencerEnabled"`
	SequencerQueueSize   int           `mapstructure:"sequencerQueueSize"`
	SequencerIdleTimeout time.Duration `mapstructure:"sequencerIdleTimeout"` // seconds
	MaxConflictRetries   int           `mapstructure:"maxConflictRetries"`
	RetryInterval        time.Duration `mapstructure:"retryInterval"`    // milliseconds
	RetryMaxInterval     time.Duration `mapstructure:"retryMaxInterval"` // milliseconds
	DuplicateWindow      time.Duration `mapstructure:"duplicateWindow"`  // minutes, 0 checks all history
	LockBackend          string        `mapstructure:"lockBackend"`      // none, database or redis
	LockTTL              time.Duration `mapstructure:"lockTtl"`          // milliseconds
	HistoryWriteRetries  int           `mapstructure:"historyWriteRetries"`
	AuditQueueSize       int           `mapstructure:"auditQueueSize"`
	DashboardWindow      int           `mapstructure:"dashboardWindow"`
	ReconcileInterval    time.Duration `mapstructure:"reconcileInterval"` // seconds
	ReconcileGrace       time.Duration `mapstructure:"reconcileGrace"`    // seconds
	ReconcileBatchSize   int           `mapstructure:"reconcileBatchSize"`
}

// RedisConfig contains settings for the redis wallet lock
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"poolSize"`
	DialTimeout time.Duration `mapstructure:"dialTimeout"` // seconds
}

// MetricsConfig contains prometheus settings
type MetricsConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Path         string        `mapstructure:"path"`
	Namespace    string        `mapstructure:"namespace"`
	PoolInterval time.Duration `mapstructure:"poolInterval"` // seconds
}

// CacheConfig contains game catalog cache settings
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	GameTTL         time.Duration `mapstructure:"gameTtl"`         // seconds
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"` // seconds
}
