package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// TransactionType classifies a balance-affecting event
type TransactionType string

// Transaction types
const (
	TypeCredit     TransactionType = "credit"
	TypeDebit      TransactionType = "debit"
	TypeWin        TransactionType = "win"
	TypeLoss       TransactionType = "loss"
	TypeAdjustment TransactionType = "adjustment"
)

const (
	maxDescriptionLength = 500
	maxReferenceLength   = 100
)

// Transaction is an immutable record of one balance change with before/after snapshots.
// Amount is always non-negative; the direction comes from Type, or for adjustments
// from the before/after pair.
type Transaction struct {
	ID            uint64
	UserID        uint64
	WalletID      uint64
	GameID        *uint64
	Type          TransactionType
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	Description   string
	ReferenceID   string
	CreatedAt     time.Time
}

// TransactionOption configures optional transaction fields
type TransactionOption func(*Transaction)

// WithGameID links the transaction to the game that produced it
func WithGameID(gameID uint64) TransactionOption {
	return func(t *Transaction) {
		if gameID != 0 {
			id := gameID
			t.GameID = &id
		}
	}
}

// WithDescription sets a human readable description
func WithDescription(description string) TransactionOption {
	return func(t *Transaction) {
		t.Description = strings.TrimSpace(description)
	}
}

// WithReferenceID sets the caller supplied idempotency reference
func WithReferenceID(referenceID string) TransactionOption {
	return func(t *Transaction) {
		t.ReferenceID = strings.TrimSpace(referenceID)
	}
}

// NewTransaction builds the ledger entry for a delta applied to wallet.
// The wallet must still hold the balance from before the delta.
func NewTransaction(
	wallet *Wallet,
	txType TransactionType,
	delta int64,
	timeProvider coreport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if wallet == nil || wallet.ID == 0 {
		return nil, errs.ErrWalletNotFound
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}
	if delta == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	after, err := AddCents(wallet.Balance(), delta)
	if err != nil {
		return nil, err
	}

	t := &Transaction{
		UserID:        wallet.UserID,
		WalletID:      wallet.ID,
		Type:          txType,
		Amount:        AbsCents(delta),
		BalanceBefore: wallet.Balance(),
		BalanceAfter:  after,
		CreatedAt:     timeProvider.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.Description = truncateUTF8(t.Description, maxDescriptionLength)
	if len(t.ReferenceID) > maxReferenceLength {
		return nil, fmt.Errorf("%w: reference id longer than %d characters", errs.ErrInvalidRequest, maxReferenceLength)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// SignedAmount returns the balance change implied by the transaction
func (t *Transaction) SignedAmount() int64 {
	switch t.Type {
	case TypeCredit, TypeWin:
		return t.Amount
	case TypeDebit, TypeLoss:
		return -t.Amount
	default:
		if t.BalanceAfter < t.BalanceBefore {
			return -t.Amount
		}
		return t.Amount
	}
}

// Validate checks the internal consistency of the entry
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if t.BalanceBefore+t.SignedAmount() != t.BalanceAfter {
		return fmt.Errorf("%w: %s of %s does not move balance from %s to %s",
			errs.ErrInvalidTransactionType, t.Type, AmountInCentsToString(t.Amount),
			AmountInCentsToString(t.BalanceBefore), AmountInCentsToString(t.BalanceAfter))
	}
	return nil
}

// IsCredit returns true if the transaction increased the balance
func (t *Transaction) IsCredit() bool {
	return t.SignedAmount() > 0
}

// Snapshot returns the audit representation of the transaction
func (t *Transaction) Snapshot() map[string]any {
	snapshot := map[string]any{
		"id":             t.ID,
		"wallet_id":      t.WalletID,
		"type":           string(t.Type),
		"amount":         AmountInCentsToString(t.Amount),
		"balance_before": AmountInCentsToString(t.BalanceBefore),
		"balance_after":  AmountInCentsToString(t.BalanceAfter),
	}
	if t.GameID != nil {
		snapshot["game_id"] = *t.GameID
	}
	if t.ReferenceID != "" {
		snapshot["reference_id"] = t.ReferenceID
	}
	return snapshot
}

// SignedDelta converts a relative type and positive amount into a balance delta
func SignedDelta(txType TransactionType, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	switch txType {
	case TypeCredit, TypeWin:
		return amount, nil
	case TypeDebit, TypeLoss:
		return -amount, nil
	default:
		return 0, fmt.Errorf("%w: %s requires an explicit direction", errs.ErrInvalidTransactionType, txType)
	}
}

// IsValidTransactionType validates if the type is allowed
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypeCredit, TypeDebit, TypeWin, TypeLoss, TypeAdjustment:
		return true
	}
	return false
}

// IsRelativeTransactionType reports whether the type carries its own sign
func IsRelativeTransactionType(txType string) bool {
	return IsValidTransactionType(txType) && TransactionType(txType) != TypeAdjustment
}

// truncateUTF8 cuts s to at most limit bytes without splitting a character
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
