package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// UserStatus represents the account status of a player
type UserStatus string

// User statuses
const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

const maxUsernameLength = 50

// User represents a platform player. Every user owns exactly one Wallet.
type User struct {
	ID        uint64
	Username  string
	Email     string
	FullName  string
	AvatarURL string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new active user after validating its identity fields
func NewUser(username, email, fullName, avatarURL string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || len(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", errs.ErrInvalidUserData, maxUsernameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email %q", errs.ErrInvalidUserData, email)
	}

	now := timeProvider.Now()
	return &User{
		Username:  username,
		Email:     email,
		FullName:  strings.TrimSpace(fullName),
		AvatarURL: strings.TrimSpace(avatarURL),
		Status:    UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ChangeStatus moves the user to a new status
func (u *User) ChangeStatus(status string, timeProvider coreport.TimeProvider) error {
	if !IsValidUserStatus(status) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidUserStatus, status)
	}
	u.Status = UserStatus(status)
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsActive reports whether the user may play
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Snapshot returns the audit representation of the user
func (u *User) Snapshot() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"full_name":  u.FullName,
		"avatar_url": u.AvatarURL,
		"status":     string(u.Status),
	}
}

// IsValidUserStatus validates if the status is allowed
func IsValidUserStatus(status string) bool {
	switch UserStatus(status) {
	case UserStatusActive, UserStatusSuspended, UserStatusBanned:
		return true
	}
	return false
}
