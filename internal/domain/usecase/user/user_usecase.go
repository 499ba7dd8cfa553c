package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	audit        usecase.AuditLogger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	audit usecase.AuditLogger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		uow:          uow,
		ledger:       ledger,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser retrieves a user by ID
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// UpdateStatus changes a user's account status
func (u *UserUseCase) UpdateStatus(ctx context.Context, userID uint64, status string) (*entity.User, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldData := user.Snapshot()
	if err := user.ChangeStatus(status, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.uow.GetUserRepository(ctx).Update(ctx, user); err != nil {
		u.logger.Error("Failed to update user status", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionUpdate,
		EntityType:  entity.EntityUser,
		EntityID:    strconv.FormatUint(user.ID, 10),
		Description: fmt.Sprintf("Changed status of %s to %s", user.Username, user.Status),
		OldData:     oldData,
		NewData:     user.Snapshot(),
	})

	u.logger.Info("User status updated", map[string]any{
		"userId": userID,
		"status": string(user.Status),
	})
	return user, nil
}
