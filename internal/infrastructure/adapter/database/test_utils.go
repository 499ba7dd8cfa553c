package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for integration tests against a real
// database. Tests are skipped when the database is unreachable.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a new test database manager from TEST_DB_* variables
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeadapter.NewRealTimeProvider()

	driver := getEnvOrDefault("TEST_DB_DRIVER", DriverPostgres)
	defaultPort := 5432
	if driver == DriverMySQL {
		defaultPort = 3306
	}

	config := &Config{
		Driver:          driver,
		Host:            getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:            getEnvIntOrDefault("TEST_DB_PORT", defaultPort),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "wallet_ledger_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		Isolation:       getEnvOrDefault("TEST_DB_ISOLATION", "read_committed"),
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "error",
		RetryAttempts:   1, // fail fast
		RetryDelay:      time.Second,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database or skips the test
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if os.Getenv("TEST_DB_SKIP") != "" {
		t.Skip("TEST_DB_SKIP is set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.Manager.Connect(ctx); err != nil {
		t.Skipf("Test database unavailable: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every ledger table and runs the migrations again
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := dropAllTables(m.Manager.DB()); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// dropAllTables drops all ledger tables, children first
func dropAllTables(db *gorm.DB) error {
	models := model.All()
	tables := make([]any, 0, len(models)+1)
	for i := len(models) - 1; i >= 0; i-- {
		tables = append(tables, models[i])
	}
	tables = append(tables, &model.MigrationVersion{})
	return db.Migrator().DropTable(tables...)
}

// TruncateAllTables removes every row and restores the operating balance row
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true})
	models := model.All()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Delete(models[i]).Error; err != nil {
			t.Fatalf("Failed to truncate %T: %v", models[i], err)
		}
	}

	row := model.OperatingBalance{ID: entity.OperatingBalanceID, UpdatedAt: m.TimeProvider.Now()}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("Failed to restore operating balance: %v", err)
	}
}

// CreateTestWallet inserts a user and its wallet with the given starting balance
func (m *TestDBManager) CreateTestWallet(t *testing.T, username string, balance int64) (userID, walletID uint64) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.test", username),
		Status:    string(entity.UserStatusActive),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	wallet := model.Wallet{
		UserID:       user.ID,
		Balance:      balance,
		TotalCredits: balance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&wallet).Error; err != nil {
		t.Fatalf("Failed to create test wallet: %v", err)
	}
	return user.ID, wallet.ID
}

// Helper functions to get environment variables or defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
