package entity

import (
	"fmt"
	"time"
)

// LogAction is the kind of state change recorded in the audit trail
type LogAction string

// Audit actions
const (
	ActionCreate        LogAction = "create"
	ActionUpdate        LogAction = "update"
	ActionDelete        LogAction = "delete"
	ActionLogin         LogAction = "login"
	ActionLogout        LogAction = "logout"
	ActionBalanceChange LogAction = "balance_change"
	ActionGamePlay      LogAction = "game_play"
)

// Audited entity types
const (
	EntityUser        = "user"
	EntityWallet      = "wallet"
	EntityGame        = "game"
	EntityTransaction = "transaction"
	EntityGameHistory = "game_history"
	EntityReport      = "report"
)

// SystemLog is one append-only audit entry. OldData and NewData are opaque
// snapshots whose shape depends on the action. EntityID may point at a
// record that no longer exists.
type SystemLog struct {
	ID          uint64
	UserID      *uint64
	Action      LogAction
	EntityType  string
	EntityID    string
	Description string
	OldData     map[string]any
	NewData     map[string]any
	IPAddress   string
	// CorrelationKey deduplicates entries that can be re-driven from the ledger
	CorrelationKey *string
	CreatedAt      time.Time
}

// TransactionCorrelationKey is the dedup key of a transaction's balance_change entry
func TransactionCorrelationKey(transactionID uint64) string {
	return fmt.Sprintf("transaction:%d", transactionID)
}

// BalanceChangeDescription renders the human readable old/new balance line
func BalanceChangeDescription(before, after int64) string {
	return fmt.Sprintf("Balance updated from $%s to $%s",
		AmountInCentsToString(before), AmountInCentsToString(after))
}

// IsValidLogAction validates if the action is allowed
func IsValidLogAction(action string) bool {
	switch LogAction(action) {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionLogout, ActionBalanceChange, ActionGamePlay:
		return true
	}
	return false
}
