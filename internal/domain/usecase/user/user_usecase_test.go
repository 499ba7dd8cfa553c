package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		m := newUserMocks(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(3)).Return(&entity.User{ID: 3, Username: "carol"}, nil).Once()

		user, err := m.useCase().GetUser(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		m := newUserMocks(t)
		_, err := m.useCase().GetUser(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Not found", func(t *testing.T) {
		m := newUserMocks(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := m.useCase().GetUser(ctx, 9)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Suspends and audits", func(t *testing.T) {
		m := newUserMocks(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(4)).
			Return(&entity.User{ID: 4, Username: "dan", Status: entity.UserStatusActive}, nil).Once()
		m.users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Status == entity.UserStatusSuspended
		})).Return(nil).Once()
		m.audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
			return e.Action == entity.ActionUpdate &&
				e.OldData["status"] == "active" &&
				e.NewData["status"] == "suspended"
		})).Once()

		user, err := m.useCase().UpdateStatus(ctx, 4, "suspended")
		require.NoError(t, err)
		assert.False(t, user.IsActive())
	})

	t.Run("Unknown status", func(t *testing.T) {
		m := newUserMocks(t)
		m.users.EXPECT().GetByID(mock.Anything, uint64(4)).
			Return(&entity.User{ID: 4, Status: entity.UserStatusActive}, nil).Once()

		_, err := m.useCase().UpdateStatus(ctx, 4, "deleted")
		assert.ErrorIs(t, err, errs.ErrInvalidUserStatus)
	})
}
