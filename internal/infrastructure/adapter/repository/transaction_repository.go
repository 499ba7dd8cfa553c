package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	repositoryBase
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{repositoryBase: newRepositoryBase(db, logger)}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		UserID:        transaction.UserID,
		WalletID:      transaction.WalletID,
		GameID:        transaction.GameID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		BalanceBefore: transaction.BalanceBefore,
		BalanceAfter:  transaction.BalanceAfter,
		Description:   transaction.Description,
		ReferenceID:   transaction.ReferenceID,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		WalletID:      m.WalletID,
		GameID:        m.GameID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		Description:   m.Description,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *TransactionRepository) toEntities(models []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions
}

// Create appends a transaction to the ledger
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	if err := r.db.WithContext(ctx).Omit("Wallet").Create(&transactionModel).Error; err != nil {
		if r.errorClassifier.Classify(err) == ConstraintError {
			return errs.ErrWalletNotFound
		}
		return r.handleDatabaseError("creating transaction", err, nil, map[string]any{
			"wallet_id":    transaction.WalletID,
			"type":         string(transaction.Type),
			"reference_id": transaction.ReferenceID,
		})
	}

	transaction.ID = transactionModel.ID
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).First(&transactionModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, errs.ErrNotFound, map[string]any{
			"transaction_id": id,
		})
	}
	return r.modelToEntity(&transactionModel), nil
}

// FindByReference looks for the newest transaction on the wallet carrying referenceID
func (r *TransactionRepository) FindByReference(ctx context.Context, walletID uint64, referenceID string, since time.Time) (*entity.Transaction, bool, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("wallet_id = ? AND reference_id = ? AND created_at >= ?", walletID, referenceID, since).
		Order("id DESC").
		Limit(1).
		Find(&models).Error
	if err != nil {
		return nil, false, r.handleDatabaseError("finding transaction by reference", err, nil, map[string]any{
			"wallet_id":    walletID,
			"reference_id": referenceID,
		})
	}
	if len(models) == 0 {
		return nil, false, nil
	}
	return r.modelToEntity(&models[0]), true, nil
}

// List returns transactions matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.WalletID != nil {
		query = query.Where("wallet_id = ?", *filter.WalletID)
	}
	if filter.GameID != nil {
		query = query.Where("game_id = ?", *filter.GameID)
	}

	var models []model.Transaction
	if err := query.Order("id DESC").Limit(clampLimit(filter.Limit)).Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, nil, nil)
	}
	return r.toEntities(models), nil
}

// ListAfter returns transactions after afterID created before the cutoff, oldest first
func (r *TransactionRepository) ListAfter(ctx context.Context, afterID uint64, createdBefore time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("id > ? AND created_at < ?", afterID, createdBefore).
		Order("id ASC").
		Limit(clampLimit(limit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions after checkpoint", err, nil, map[string]any{
			"after_id": afterID,
		})
	}
	return r.toEntities(models), nil
}

// ListByWallet returns a wallet's transactions after afterID, oldest first
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uint64, afterID uint64, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("wallet_id = ? AND id > ?", walletID, afterID).
		Order("id ASC").
		Limit(clampLimit(limit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing wallet transactions", err, nil, map[string]any{
			"wallet_id": walletID,
		})
	}
	return r.toEntities(models), nil
}

// Totals sums transactions per type over [from, to)
func (r *TransactionRepository) Totals(ctx context.Context, from, to time.Time) ([]entity.TransactionTotals, error) {
	var rows []struct {
		Type   string
		Count  int64
		Amount int64
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("type").
		Order("type").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("summing transactions", err, nil, nil)
	}

	totals := make([]entity.TransactionTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, entity.TransactionTotals{
			Type:   entity.TransactionType(row.Type),
			Count:  row.Count,
			Amount: row.Amount,
		})
	}
	return totals, nil
}
