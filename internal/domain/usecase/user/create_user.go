package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// defaultUsers are the development accounts created on an empty database
var defaultUsers = []usecase.CreateUserRequest{
	{Username: "player1", Email: "player1@example.com", FullName: "Player One", InitialBalance: "100.00"},
	{Username: "player2", Email: "player2@example.com", FullName: "Player Two", InitialBalance: "200.00"},
	{Username: "player3", Email: "player3@example.com", FullName: "Player Three", InitialBalance: "300.00"},
}

// CreateUser creates a user and its wallet in one unit of work. A non-zero
// initial balance goes through the ledger as a credit so the wallet's chain
// starts from zero.
func (u *UserUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, *entity.Wallet, error) {
	initial := int64(0)
	if strings.TrimSpace(req.InitialBalance) != "" {
		var err error
		if initial, err = entity.ValidateAndConvertAmount(req.InitialBalance); err != nil {
			return nil, nil, err
		}
	}

	user, err := entity.NewUser(req.Username, req.Email, req.FullName, req.AvatarURL, u.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	wallet, err := u.createWithWallet(ctx, user)
	if err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		return nil, nil, err
	}

	u.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionCreate,
		EntityType:  entity.EntityUser,
		EntityID:    strconv.FormatUint(user.ID, 10),
		Description: fmt.Sprintf("Created user %s", user.Username),
		NewData:     user.Snapshot(),
	})

	if initial > 0 {
		if _, err := u.ledger.ApplyTransaction(ctx, usecase.ApplyTransactionRequest{
			WalletID:    wallet.ID,
			Type:        string(entity.TypeCredit),
			Amount:      entity.AmountInCentsToString(initial),
			Description: "Initial balance",
		}); err != nil {
			u.logger.Error("Failed to fund new wallet", map[string]any{
				"userId":   user.ID,
				"walletId": wallet.ID,
				"error":    err.Error(),
			})
			return nil, nil, fmt.Errorf("user %d created but initial balance was not applied: %w", user.ID, err)
		}

		if wallet, err = u.uow.GetWalletRepository(ctx).GetByID(ctx, wallet.ID); err != nil {
			return nil, nil, err
		}
	}

	u.logger.Info("User created", map[string]any{
		"userId":         user.ID,
		"walletId":       wallet.ID,
		"initialBalance": entity.AmountInCentsToString(initial),
	})
	return user, wallet, nil
}

func (u *UserUseCase) createWithWallet(ctx context.Context, user *entity.User) (*entity.Wallet, error) {
	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
				u.logger.Error("Failed to rollback user creation", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
		return nil, err
	}

	wallet, err := entity.NewWallet(user.ID, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := u.uow.GetWalletRepository(txCtx).Create(txCtx, wallet); err != nil {
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true
	return wallet, nil
}

// CreateDefaultUsers creates the development users when no user exists yet
func (u *UserUseCase) CreateDefaultUsers(ctx context.Context) error {
	count, err := u.uow.GetUserRepository(ctx).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		u.logger.Info("Users already exist, skipping default users", map[string]any{
			"count": count,
		})
		return nil
	}

	for _, req := range defaultUsers {
		if _, _, err := u.CreateUser(ctx, req); err != nil {
			return err
		}
	}

	u.logger.Info("Default users created", map[string]any{
		"count": len(defaultUsers),
	})
	return nil
}
