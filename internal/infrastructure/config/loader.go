package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "WL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// envOverrides maps environment variables onto config keys. Values are
// decoded by viper so numeric and boolean settings accept plain strings.
var envOverrides = []struct {
	env string
	key string
}{
	{"WL_DB_DRIVER", "database.driver"},
	{"WL_DB_HOST", "database.host"},
	{"WL_DB_PORT", "database.port"},
	{"WL_DB_USERNAME", "database.username"},
	{"WL_DB_PASSWORD", "database.password"},
	{"WL_DB_NAME", "database.database"},
	{"WL_DB_SSL_MODE", "database.sslMode"},
	{"WL_DB_ISOLATION", "database.isolation"},
	{"WL_DB_MAX_OPEN_CONNS", "database.maxOpenConns"},
	{"WL_DB_MAX_IDLE_CONNS", "database.maxIdleConns"},
	{"WL_DB_QUERY_TIMEOUT_SECONDS", "database.queryTimeout"},
	{"WL_DB_RETRY_ATTEMPTS", "database.retryAttempts"},
	{"WL_DB_AUTO_MIGRATE", "database.autoMigrate"},
	{"WL_SERVER_HOST", "server.host"},
	{"WL_SERVER_PORT", "server.port"},
	{"WL_LOGGER_LEVEL", "logger.level"},
	{"WL_LOGGER_FORMAT", "logger.format"},
	{"WL_LEDGER_LOCK_BACKEND", "ledger.lockBackend"},
	{"WL_LEDGER_MAX_CONFLICT_RETRIES", "ledger.maxConflictRetries"},
	{"WL_REDIS_ADDR", "redis.addr"},
	{"WL_REDIS_PASSWORD", "redis.password"},
	{"WL_METRICS_ENABLED", "metrics.enabled"},
	{"WL_CACHE_ENABLED", "cache.enabled"},
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s config file found, using defaults\n", env)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.isolation", "read_committed")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("database.seedData", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ledger.sequencerEnabled", true)
	v.SetDefault("ledger.sequencerQueueSize", 100)
	v.SetDefault("ledger.sequencerIdleTimeout", 60) // seconds
	v.SetDefault("ledger.maxConflictRetries", 3)
	v.SetDefault("ledger.retryInterval", 10)     // milliseconds
	v.SetDefault("ledger.retryMaxInterval", 200) // milliseconds
	v.SetDefault("ledger.duplicateWindow", 1440) // minutes
	v.SetDefault("ledger.lockBackend", "none")
	v.SetDefault("ledger.lockTtl", 10000) // milliseconds
	v.SetDefault("ledger.historyWriteRetries", 3)
	v.SetDefault("ledger.auditQueueSize", 1024)
	v.SetDefault("ledger.dashboardWindow", 1000)
	v.SetDefault("ledger.reconcileInterval", 30) // seconds
	v.SetDefault("ledger.reconcileGrace", 10)    // seconds
	v.SetDefault("ledger.reconcileBatchSize", 500)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poolSize", 20)
	v.SetDefault("redis.dialTimeout", 5) // seconds

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "wallet_ledger")
	v.SetDefault("metrics.poolInterval", 30) // seconds

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.gameTtl", 30)         // seconds
	v.SetDefault("cache.cleanupInterval", 60) // seconds
}

// getEnvironment determines the environment to use based on WL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("WL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for _, o := range envOverrides {
		if value, ok := os.LookupEnv(o.env); ok && value != "" {
			v.Set(o.key, value)
		}
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowThreshold *= time.Millisecond
	config.Database.RetryDelay *= time.Second

	config.Ledger.SequencerIdleTimeout *= time.Second
	config.Ledger.RetryInterval *= time.Millisecond
	config.Ledger.RetryMaxInterval *= time.Millisecond
	config.Ledger.DuplicateWindow *= time.Minute
	config.Ledger.LockTTL *= time.Millisecond
	config.Ledger.ReconcileInterval *= time.Second
	config.Ledger.ReconcileGrace *= time.Second

	config.Redis.DialTimeout *= time.Second
	config.Metrics.PoolInterval *= time.Second
	config.Cache.GameTTL *= time.Second
	config.Cache.CleanupInterval *= time.Second
}

// Validate checks settings that would otherwise fail late at runtime
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case "postgres", "mysql":
		if c.Database.Host == "" {
			return errors.New("database host is required")
		}
		if c.Database.Database == "" {
			return errors.New("database name is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	switch c.Ledger.LockBackend {
	case "none", "database":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis address is required for the redis lock backend")
		}
	default:
		return fmt.Errorf("unsupported lock backend: %s", c.Ledger.LockBackend)
	}
	if c.Ledger.LockBackend == "database" && c.Database.Driver == "memory" {
		return errors.New("the database lock backend needs a sql driver")
	}

	if c.Ledger.MaxConflictRetries < 0 {
		return fmt.Errorf("max conflict retries must be non-negative, got: %d", c.Ledger.MaxConflictRetries)
	}
	if c.Database.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	return nil
}
