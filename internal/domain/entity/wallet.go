package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Wallet is a per-user monetary account. Balance and lifetime totals are kept
// in cents and only change through ApplyDelta.
type Wallet struct {
	ID           uint64
	UserID       uint64
	balance      int64
	totalCredits int64
	totalDebits  int64
	// Version increases by one on every applied delta and backs compare-and-swap updates
	Version   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for the given user
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreWallet rebuilds a wallet from stored state (for repositories)
func RestoreWallet(id, userID uint64, balance, totalCredits, totalDebits int64, version uint64, createdAt, updatedAt time.Time) *Wallet {
	return &Wallet{
		ID:           id,
		UserID:       userID,
		balance:      balance,
		totalCredits: totalCredits,
		totalDebits:  totalDebits,
		Version:      version,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Balance returns the current balance in cents
func (w *Wallet) Balance() int64 {
	return w.balance
}

// TotalCredits returns the lifetime sum of positive deltas in cents
func (w *Wallet) TotalCredits() int64 {
	return w.totalCredits
}

// TotalDebits returns the lifetime sum of negative deltas in cents
func (w *Wallet) TotalDebits() int64 {
	return w.totalDebits
}

// GetBalance returns the balance as a string with 2 decimal places
func (w *Wallet) GetBalance() string {
	return AmountInCentsToString(w.balance)
}

// ApplyDelta applies a signed change to the balance. The lifetime totals
// follow the sign of the delta, not the nominal transaction type.
// Nothing is modified when an error is returned.
func (w *Wallet) ApplyDelta(delta int64, timeProvider coreport.TimeProvider) error {
	if delta == 0 {
		return errs.ErrInvalidAmount
	}
	if delta == math.MinInt64 {
		return errs.ErrAmountOverflow
	}

	balance, err := AddCents(w.balance, delta)
	if err != nil {
		return err
	}

	credits, debits := w.totalCredits, w.totalDebits
	if delta > 0 {
		credits, err = AddCents(credits, delta)
	} else {
		debits, err = AddCents(debits, -delta)
	}
	if err != nil {
		return err
	}

	w.balance = balance
	w.totalCredits = credits
	w.totalDebits = debits
	w.Version++
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Snapshot returns the audit representation of the wallet
func (w *Wallet) Snapshot() map[string]any {
	return map[string]any{
		"id":            w.ID,
		"user_id":       w.UserID,
		"balance":       AmountInCentsToString(w.balance),
		"total_credits": AmountInCentsToString(w.totalCredits),
		"total_debits":  AmountInCentsToString(w.totalDebits),
		"version":       w.Version,
	}
}
