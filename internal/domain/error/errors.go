package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeDuplicateReference     = 4004
	CodeConstraintViolation    = 4005
	CodeAmountOverflow         = 4006
	CodeInvalidResult          = 4007
	CodeInvalidTransactionType = 4008
	CodeBetOutOfRange          = 4009
	CodeInvalidUserData        = 4010
	CodeInvalidGameData        = 4011
	CodeInvalidUserStatus      = 4012
	CodeInvalidRequest         = 4013
	CodeNotFound               = 4040
	CodeUserNotFound           = 4041
	CodeWalletNotFound         = 4042
	CodeGameNotFound           = 4043
	CodeReportNotFound         = 4044
	CodeDuplicateUser          = 4090
	CodeConcurrentModification = 4091
	CodeGameNotActive          = 4220
	CodeWalletLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrNotFound is the parent of every "missing entity" error
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrWalletNotFound is returned when the requested wallet doesn't exist
	ErrWalletNotFound = fmt.Errorf("wallet %w", ErrNotFound)

	// ErrGameNotFound is returned when the requested game doesn't exist
	ErrGameNotFound = fmt.Errorf("game %w", ErrNotFound)

	// ErrReportNotFound is returned when the requested report doesn't exist
	ErrReportNotFound = fmt.Errorf("report %w", ErrNotFound)

	// ErrInvalidAmount is returned for non-positive, non-finite or malformed amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when a relative amount is negative
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)

	// ErrAmountOverflow is returned when an amount or balance would overflow int64 cents
	ErrAmountOverflow = fmt.Errorf("%w: amount is too large", ErrInvalidAmount)

	// ErrInvalidResult is returned when a game result is inconsistent with its win amount
	ErrInvalidResult = errors.New("invalid game result")

	// ErrInvalidTransactionType is returned for an unknown or misused transaction type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrConcurrentModification is returned when a wallet update lost a race after bounded retries
	ErrConcurrentModification = errors.New("wallet was modified concurrently")

	// ErrStorageUnavailable is returned when the underlying store timed out or is unreachable
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrBetOutOfRange is returned when a bet is outside the game's configured limits
	ErrBetOutOfRange = errors.New("bet amount out of range")

	// ErrGameNotActive is returned when a bet is placed on a game that is not active
	ErrGameNotActive = errors.New("game is not active")

	// ErrDuplicateReference is returned when a reference id was already used on the wallet
	ErrDuplicateReference = errors.New("duplicate reference id")

	// ErrInvalidUserID is returned when an id is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidUserData is returned when user fields fail validation
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrInvalidUserStatus is returned for an unknown user status
	ErrInvalidUserStatus = errors.New("invalid user status")

	// ErrDuplicateUser is returned when username or email is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidGameData is returned when game fields fail validation
	ErrInvalidGameData = errors.New("invalid game data")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrWalletLocked is returned when a cross-process wallet lock could not be acquired
	ErrWalletLocked = errors.New("wallet is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrLedgerClosed is returned when a mutation arrives after shutdown started
	ErrLedgerClosed = errors.New("ledger is shutting down")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors.
// More specific errors are matched before their parents.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrBetOutOfRange):
		return CodeBetOutOfRange
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidResult):
		return CodeInvalidResult
	case errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidTransactionType
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidUserData):
		return CodeInvalidUserData
	case errors.Is(err, ErrInvalidUserStatus):
		return CodeInvalidUserStatus
	case errors.Is(err, ErrInvalidGameData):
		return CodeInvalidGameData
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrGameNotFound):
		return CodeGameNotFound
	case errors.Is(err, ErrReportNotFound):
		return CodeReportNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentModification
	case errors.Is(err, ErrGameNotActive):
		return CodeGameNotActive
	case errors.Is(err, ErrWalletLocked):
		return CodeWalletLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrLedgerClosed):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// BalanceError represents an error related to a wallet balance operation
type BalanceError struct {
	WalletID       uint64
	Type           string
	Amount         string
	CurrentBalance string
	Err            error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s on wallet %d failed (current balance: %s, amount: %s): %v",
		e.Type, e.WalletID, e.CurrentBalance, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "balance_error",
		"wallet_id":       e.WalletID,
		"type":            e.Type,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error":           e.Err.Error(),
		"error_code":      ErrorCode(e.Err),
	}
}

// NewBalanceError creates a detailed balance error
func NewBalanceError(walletID uint64, txType, amount, currentBalance string, err error) error {
	return &BalanceError{
		WalletID:       walletID,
		Type:           txType,
		Amount:         amount,
		CurrentBalance: currentBalance,
		Err:            err,
	}
}

// TransactionError represents an error related to recording a ledger entry
type TransactionError struct {
	WalletID    uint64
	UserID      uint64
	Type        string
	Amount      string
	ReferenceID string
	Reason      string
	Err         error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction error for wallet %d (user: %d, type: %s, amount: %s): %s - %v",
		e.WalletID, e.UserID, e.Type, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "transaction_error",
		"wallet_id":    e.WalletID,
		"user_id":      e.UserID,
		"type":         e.Type,
		"amount":       e.Amount,
		"reference_id": e.ReferenceID,
		"reason":       e.Reason,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(walletID, userID uint64, txType, amount, referenceID, reason string, err error) error {
	return &TransactionError{
		WalletID:    walletID,
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		ReferenceID: referenceID,
		Reason:      reason,
		Err:         err,
	}
}

// DuplicateReferenceError provides detailed information about a replayed reference id
type DuplicateReferenceError struct {
	WalletID      uint64
	ReferenceID   string
	TransactionID uint64
}

// Error implements the error interface
func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("duplicate reference detected: referenceID=%s on wallet %d (transaction %d)",
		e.ReferenceID, e.WalletID, e.TransactionID)
}

// Is checks if the target error is an ErrDuplicateReference
func (e *DuplicateReferenceError) Is(target error) bool {
	return target == ErrDuplicateReference
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateReferenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "duplicate_reference",
		"wallet_id":      e.WalletID,
		"reference_id":   e.ReferenceID,
		"transaction_id": e.TransactionID,
		"error_code":     CodeDuplicateReference,
	}
}

// NewDuplicateReferenceError creates a new detailed duplicate reference error
func NewDuplicateReferenceError(walletID uint64, referenceID string, transactionID uint64) error {
	return &DuplicateReferenceError{
		WalletID:      walletID,
		ReferenceID:   referenceID,
		TransactionID: transactionID,
	}
}

// BetLimitError reports a bet outside a game's configured limits.
// It matches both ErrBetOutOfRange and ErrInvalidAmount.
type BetLimitError struct {
	GameID uint64
	Bet    string
	MinBet string
	MaxBet string
}

// Error implements the error interface
func (e *BetLimitError) Error() string {
	return fmt.Sprintf("bet %s on game %d is outside [%s, %s]", e.Bet, e.GameID, e.MinBet, e.MaxBet)
}

// Is checks if the target error is ErrBetOutOfRange or ErrInvalidAmount
func (e *BetLimitError) Is(target error) bool {
	return target == ErrBetOutOfRange || target == ErrInvalidAmount
}

// LogFields returns a map of fields for structured logging
func (e *BetLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "bet_out_of_range",
		"game_id":    e.GameID,
		"bet":        e.Bet,
		"min_bet":    e.MinBet,
		"max_bet":    e.MaxBet,
		"error_code": CodeBetOutOfRange,
	}
}

// NewBetLimitError creates a new bet limit error
func NewBetLimitError(gameID uint64, bet, minBet, maxBet string) error {
	return &BetLimitError{
		GameID: gameID,
		Bet:    bet,
		MinBet: minBet,
		MaxBet: maxBet,
	}
}

// IsDuplicateReferenceError checks if the error is a duplicate reference error
func IsDuplicateReferenceError(err error) bool {
	return errors.Is(err, ErrDuplicateReference)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCallerError reports whether the error was caused by invalid input.
// Caller errors are never retried by the engine.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidResult) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrGameNotActive) ||
		errors.Is(err, ErrDuplicateReference) ||
		IsNotFoundError(err)
}

// IsConcurrentModificationError checks if the error is an optimistic-lock conflict
func IsConcurrentModificationError(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

// IsStorageUnavailableError checks if the error is a storage timeout or outage
func IsStorageUnavailableError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// LogFielder is implemented by errors that carry structured logging context
type LogFielder interface {
	LogFields() map[string]any
}

// Fields extracts structured logging fields from err, falling back to the message
func Fields(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
