package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundHierarchy(t *testing.T) {
	for _, err := range []error{ErrUserNotFound, ErrWalletNotFound, ErrGameNotFound, ErrReportNotFound} {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("errors.Is(%v, ErrNotFound) = false, want true", err)
		}
		if !IsNotFoundError(fmt.Errorf("lookup: %w", err)) {
			t.Errorf("IsNotFoundError(wrapped %v) = false, want true", err)
		}
	}
	if errors.Is(ErrWalletNotFound, ErrUserNotFound) {
		t.Errorf("wallet and user not-found errors must be distinct")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"AmountOverflow", ErrAmountOverflow, 4006},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateReference", ErrDuplicateReference, 4004},
		{"InvalidResult", ErrInvalidResult, 4007},
		{"BetOutOfRange", NewBetLimitError(1, "0.50", "1.00", "10.00"), 4009},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"WalletNotFound", ErrWalletNotFound, 4042},
		{"GenericNotFound", ErrNotFound, 4040},
		{"ConcurrentModification", ErrConcurrentModification, 4091},
		{"GameNotActive", ErrGameNotActive, 4220},
		{"StorageUnavailable", ErrStorageUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestBalanceError(t *testing.T) {
	balanceErr := NewBalanceError(7, "debit", "100.50", "50.25", ErrConcurrentModification)

	expected := "debit on wallet 7 failed (current balance: 50.25, amount: 100.50): wallet was modified concurrently"
	if balanceErr.Error() != expected {
		t.Errorf("BalanceError.Error() = %s, want %s", balanceErr.Error(), expected)
	}
	if !errors.Is(balanceErr, ErrConcurrentModification) {
		t.Errorf("errors.Is(balanceErr, ErrConcurrentModification) = false, want true")
	}

	fields := Fields(balanceErr)
	if fields["wallet_id"] != uint64(7) || fields["error_code"] != CodeConcurrentModification {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestTransactionError(t *testing.T) {
	txErr := NewTransactionError(3, 9, "credit", "10.00", "ref-1", "store failed", ErrStorageUnavailable)

	if !IsStorageUnavailableError(txErr) {
		t.Errorf("IsStorageUnavailableError(txErr) = false, want true")
	}
	var typed *TransactionError
	if !errors.As(txErr, &typed) || typed.ReferenceID != "ref-1" {
		t.Errorf("errors.As did not expose the TransactionError")
	}
}

func TestDuplicateReferenceError(t *testing.T) {
	err := fmt.Errorf("apply: %w", NewDuplicateReferenceError(1, "round-1", 42))

	if !IsDuplicateReferenceError(err) {
		t.Errorf("IsDuplicateReferenceError = false, want true")
	}
	if !IsCallerError(err) {
		t.Errorf("duplicate reference must be treated as a caller error")
	}
	if ErrorCode(err) != CodeDuplicateReference {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeDuplicateReference)
	}
}

func TestBetLimitErrorMatchesInvalidAmount(t *testing.T) {
	err := NewBetLimitError(5, "500.00", "1.00", "100.00")

	if !errors.Is(err, ErrBetOutOfRange) {
		t.Errorf("errors.Is(err, ErrBetOutOfRange) = false, want true")
	}
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("errors.Is(err, ErrInvalidAmount) = false, want true")
	}
	if errors.Is(err, ErrGameNotActive) {
		t.Errorf("bet limit error must not match ErrGameNotActive")
	}
}

func TestIsCallerError(t *testing.T) {
	testCases := []struct {
		err      error
		expected bool
	}{
		{ErrInvalidAmount, true},
		{ErrInvalidResult, true},
		{ErrWalletNotFound, true},
		{ErrGameNotActive, true},
		{ErrConcurrentModification, false},
		{ErrStorageUnavailable, false},
		{errors.New("boom"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := IsCallerError(tc.err); got != tc.expected {
				t.Errorf("IsCallerError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestFieldsFallback(t *testing.T) {
	fields := Fields(errors.New("plain"))
	if fields["error"] != "plain" || fields["error_code"] != CodeInternalServer {
		t.Errorf("unexpected fallback fields: %v", fields)
	}
}
