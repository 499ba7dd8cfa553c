package persistence

import (
	"context"
)

// UnitOfWork coordinates one atomic store transaction across repositories.
// Repositories obtained with a context returned by Begin take part in that
// transaction; with any other context they run on their own.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	GetUserRepository(ctx context.Context) UserRepository
	GetWalletRepository(ctx context.Context) WalletRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetGameHistoryRepository(ctx context.Context) GameHistoryRepository
	GetGameRepository(ctx context.Context) GameRepository
	GetOperatingBalanceRepository(ctx context.Context) OperatingBalanceRepository
	GetSystemLogRepository(ctx context.Context) SystemLogRepository
	GetReportRepository(ctx context.Context) ReportRepository
}
