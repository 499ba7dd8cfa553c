package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// GameResult is the externally decided outcome of a round
type GameResult string

// Game results
const (
	ResultWin  GameResult = "win"
	ResultLoss GameResult = "loss"
)

// GameHistory records one played round: stake, outcome and payout.
// TransactionID links to the ledger entry carrying the net effect; it is
// nil when the round netted to zero.
type GameHistory struct {
	ID            uint64
	UserID        uint64
	GameID        uint64
	TransactionID *uint64
	RoundID       string
	BetAmount     int64
	WinAmount     int64
	Result        GameResult
	OddsAtPlay    decimal.Decimal
	GameData      map[string]any
	PlayedAt      time.Time
}

// ValidateOutcome checks that the result agrees with the win amount
func ValidateOutcome(result string, betAmount, winAmount int64) error {
	if betAmount <= 0 {
		return fmt.Errorf("%w: bet amount must be positive", errs.ErrInvalidAmount)
	}
	if winAmount < 0 {
		return fmt.Errorf("%w: win amount cannot be negative", errs.ErrInvalidAmount)
	}
	switch GameResult(result) {
	case ResultWin:
		if winAmount <= 0 {
			return fmt.Errorf("%w: a win requires a positive win amount", errs.ErrInvalidResult)
		}
	case ResultLoss:
		if winAmount != 0 {
			return fmt.Errorf("%w: a loss cannot carry a win amount", errs.ErrInvalidResult)
		}
	default:
		return fmt.Errorf("%w: unknown result %q", errs.ErrInvalidResult, result)
	}
	return nil
}

// NetDelta returns win - bet, the balance effect of the round
func NetDelta(betAmount, winAmount int64) (int64, error) {
	return AddCents(winAmount, -betAmount)
}

// NetTransactionType picks the ledger type for a round's net effect
func NetTransactionType(net int64) TransactionType {
	if net >= 0 {
		return TypeWin
	}
	return TypeLoss
}

// LinkTransaction records the ledger entry that carried the round's net effect
func (h *GameHistory) LinkTransaction(tx *Transaction) {
	if tx == nil {
		h.TransactionID = nil
		return
	}
	id := tx.ID
	h.TransactionID = &id
}

// Snapshot returns the audit representation of the round
func (h *GameHistory) Snapshot() map[string]any {
	snapshot := map[string]any{
		"id":           h.ID,
		"game_id":      h.GameID,
		"round_id":     h.RoundID,
		"bet_amount":   AmountInCentsToString(h.BetAmount),
		"win_amount":   AmountInCentsToString(h.WinAmount),
		"result":       string(h.Result),
		"odds_at_play": h.OddsAtPlay.String(),
	}
	if h.TransactionID != nil {
		snapshot["transaction_id"] = *h.TransactionID
	}
	return snapshot
}
