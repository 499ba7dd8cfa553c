package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// TransactionRequest is the body of POST /wallets/:walletId/transactions
type TransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=credit debit win loss"`
	Amount      string  `json:"amount" binding:"required"`
	GameID      *uint64 `json:"gameId"`
	Description string  `json:"description"`
	ReferenceID string  `json:"referenceId"`
}

// AdjustmentRequest is the body of POST /wallets/:walletId/adjustments
type AdjustmentRequest struct {
	TargetBalance string `json:"targetBalance" binding:"required"`
	Description   string `json:"description"`
	ReferenceID   string `json:"referenceId"`
}

// TransactionResponse represents one ledger row
type TransactionResponse struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"userId"`
	WalletID      uint64    `json:"walletId"`
	GameID        *uint64   `json:"gameId,omitempty"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	BalanceBefore string    `json:"balanceBefore"`
	BalanceAfter  string    `json:"balanceAfter"`
	Description   string    `json:"description,omitempty"`
	ReferenceID   string    `json:"referenceId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		UserID:        tx.UserID,
		WalletID:      tx.WalletID,
		GameID:        tx.GameID,
		Type:          string(tx.Type),
		Amount:        entity.AmountInCentsToString(tx.Amount),
		BalanceBefore: entity.AmountInCentsToString(tx.BalanceBefore),
		BalanceAfter:  entity.AmountInCentsToString(tx.BalanceAfter),
		Description:   tx.Description,
		ReferenceID:   tx.ReferenceID,
		CreatedAt:     tx.CreatedAt,
	}
}

// NewTransactionListResponse maps a list of transactions
func NewTransactionListResponse(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
