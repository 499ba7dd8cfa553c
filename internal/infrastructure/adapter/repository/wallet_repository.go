package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// WalletRepository implements WalletRepository interface using GORM
type WalletRepository struct {
	repositoryBase
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{repositoryBase: newRepositoryBase(db, logger)}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	return entity.RestoreWallet(m.ID, m.UserID, m.Balance, m.TotalCredits, m.TotalDebits, m.Version, m.CreatedAt, m.UpdatedAt)
}

// Create saves a new wallet and assigns its ID
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:       wallet.UserID,
		Balance:      wallet.Balance(),
		TotalCredits: wallet.TotalCredits(),
		TotalDebits:  wallet.TotalDebits(),
		Version:      wallet.Version,
		CreatedAt:    wallet.CreatedAt,
		UpdatedAt:    wallet.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&walletModel).Error; err != nil {
		return r.handleDatabaseError("creating wallet", err, nil, map[string]any{
			"user_id": wallet.UserID,
		})
	}

	wallet.ID = walletModel.ID
	return nil
}

// GetByID retrieves a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	if err := r.db.WithContext(ctx).First(&walletModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting wallet", err, errs.ErrWalletNotFound, map[string]any{
			"wallet_id": id,
		})
	}
	return walletToEntity(&walletModel), nil
}

// GetByUserID retrieves the wallet owned by a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting wallet by user", err, errs.ErrWalletNotFound, map[string]any{
			"user_id": userID,
		})
	}
	return walletToEntity(&walletModel), nil
}

// GetForUpdate reads the wallet row with an exclusive row lock (SELECT ... FOR UPDATE)
func (r *WalletRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&walletModel, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking wallet", err, errs.ErrWalletNotFound, map[string]any{
			"wallet_id": id,
		})
	}
	return walletToEntity(&walletModel), nil
}

// UpdateBalance writes the balance and totals if the stored version still matches
func (r *WalletRepository) UpdateBalance(ctx context.Context, wallet *entity.Wallet, expectedVersion uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, expectedVersion).
		Updates(map[string]any{
			"balance":       wallet.Balance(),
			"total_credits": wallet.TotalCredits(),
			"total_debits":  wallet.TotalDebits(),
			"version":       wallet.Version,
			"updated_at":    wallet.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating wallet balance", result.Error, errs.ErrWalletNotFound, map[string]any{
			"wallet_id": wallet.ID,
			"version":   expectedVersion,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet version moved on during update", map[string]any{
			"wallet_id":        wallet.ID,
			"expected_version": expectedVersion,
		})
		return errs.ErrConcurrentModification
	}
	return nil
}

// List returns wallets with ID greater than afterID in ascending ID order
func (r *WalletRepository) List(ctx context.Context, afterID uint64, limit int) ([]*entity.Wallet, error) {
	var models []model.Wallet
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(clampLimit(limit)).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing wallets", err, nil, nil)
	}

	wallets := make([]*entity.Wallet, 0, len(models))
	for i := range models {
		wallets = append(wallets, walletToEntity(&models[i]))
	}
	return wallets, nil
}
