package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	FullName       string `json:"fullName"`
	AvatarURL      string `json:"avatarUrl"`
	InitialBalance string `json:"initialBalance"`
}

// UpdateUserStatusRequest is the body of PATCH /users/:userId/status
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UserResponse represents a platform user
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateUserResponse returns the user together with its new wallet
type CreateUserResponse struct {
	User   UserResponse   `json:"user"`
	Wallet WalletResponse `json:"wallet"`
}

// WalletResponse represents a wallet with amounts as decimal strings
type WalletResponse struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"userId"`
	Balance      string    `json:"balance"`
	TotalCredits string    `json:"totalCredits"`
	TotalDebits  string    `json:"totalDebits"`
	Version      uint64    `json:"version"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewWalletResponse maps a wallet entity
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:           w.ID,
		UserID:       w.UserID,
		Balance:      entity.AmountInCentsToString(w.Balance()),
		TotalCredits: entity.AmountInCentsToString(w.TotalCredits()),
		TotalDebits:  entity.AmountInCentsToString(w.TotalDebits()),
		Version:      w.Version,
		UpdatedAt:    w.UpdatedAt,
	}
}
