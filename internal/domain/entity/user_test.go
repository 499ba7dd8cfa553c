package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" alice ", "Alice@Example.com", "Alice A", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.True(t, user.IsActive())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid identity fields", func(t *testing.T) {
		testCases := []struct {
			username string
			email    string
		}{
			{"", "a@b.io"},
			{"bob", "not-an-email"},
			{"bob", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.username+"/"+tc.email, func(t *testing.T) {
				user, err := NewUser(tc.username, tc.email, "", "", mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidUserData)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserChangeStatus(t *testing.T) {
	initialTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := initialTime.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Once()

	user, err := NewUser("carol", "carol@example.com", "", "", mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(updateTime).Once()
	require.NoError(t, user.ChangeStatus("suspended", mockTime))
	assert.Equal(t, UserStatusSuspended, user.Status)
	assert.Equal(t, updateTime, user.UpdatedAt)
	assert.False(t, user.IsActive())

	assert.ErrorIs(t, user.ChangeStatus("deleted", mockTime), errs.ErrInvalidUserStatus)
	assert.Equal(t, UserStatusSuspended, user.Status)
}
