package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// txHolder is the open transaction carried in a context. Once it is finished
// repositories built from that context fall back to the base connection.
type txHolder struct {
	tx   *gorm.DB
	done bool
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db        *gorm.DB
	logger    coreport.Logger
	isolation sql.IsolationLevel
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, isolation sql.IsolationLevel) *UnitOfWork {
	return &UnitOfWork{
		db:        db,
		logger:    logger,
		isolation: isolation,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if h := holderFromContext(ctx); h != nil && !h.done {
		return ctx, errors.New("nested transaction is not supported")
	}

	u.logger.Debug("Beginning database transaction", map[string]any{
		"isolation": u.isolation.String(),
	})

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", repository.MapError(tx.Error, nil))
	}

	return context.WithValue(ctx, txKey, &txHolder{tx: tx}), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	h := holderFromContext(ctx)
	if h == nil || h.done {
		return errors.New("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	err := h.tx.Commit().Error
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return repository.MapError(err, nil)
	}

	h.done = true
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished
// transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	h := holderFromContext(ctx)
	if h == nil || h.done {
		return nil
	}

	u.logger.Debug("Rolling back database transaction", nil)
	h.done = true

	err := h.tx.Rollback().Error
	if err != nil && errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWalletRepository returns a wallet repository in the current transaction
func (u *UnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetGameHistoryRepository returns a game history repository in the current transaction
func (u *UnitOfWork) GetGameHistoryRepository(ctx context.Context) persistence.GameHistoryRepository {
	return repository.NewGameHistoryRepository(u.getDbFromContext(ctx), u.logger)
}

// GetGameRepository returns a game repository in the current transaction
func (u *UnitOfWork) GetGameRepository(ctx context.Context) persistence.GameRepository {
	return repository.NewGameRepository(u.getDbFromContext(ctx), u.logger)
}

// GetOperatingBalanceRepository returns an operating balance repository in the current transaction
func (u *UnitOfWork) GetOperatingBalanceRepository(ctx context.Context) persistence.OperatingBalanceRepository {
	return repository.NewOperatingBalanceRepository(u.getDbFromContext(ctx), u.logger)
}

// GetSystemLogRepository returns a system log repository in the current transaction
func (u *UnitOfWork) GetSystemLogRepository(ctx context.Context) persistence.SystemLogRepository {
	return repository.NewSystemLogRepository(u.getDbFromContext(ctx), u.logger)
}

// GetReportRepository returns a report repository in the current transaction
func (u *UnitOfWork) GetReportRepository(ctx context.Context) persistence.ReportRepository {
	return repository.NewReportRepository(u.getDbFromContext(ctx), u.logger)
}

func holderFromContext(ctx context.Context) *txHolder {
	h, _ := ctx.Value(txKey).(*txHolder)
	return h
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if h := holderFromContext(ctx); h != nil && !h.done {
		return h.tx
	}
	return u.db.WithContext(ctx)
}

// ParseIsolation maps a configured isolation name to a driver level
func ParseIsolation(name string) (sql.IsolationLevel, error) {
	switch name {
	case "", "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unsupported isolation level: %s", name)
	}
}
