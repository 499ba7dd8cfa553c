package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// RequestValidator validates ledger requests before any store access
type RequestValidator struct{}

// NewRequestValidator creates a new RequestValidator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateApply checks a relative transaction request and returns its type and signed delta
func (v *RequestValidator) ValidateApply(req usecase.ApplyTransactionRequest) (entity.TransactionType, int64, error) {
	if req.WalletID == 0 {
		return "", 0, errs.ErrWalletNotFound
	}

	txType := strings.TrimSpace(req.Type)
	if !entity.IsRelativeTransactionType(txType) {
		if txType == string(entity.TypeAdjustment) {
			return "", 0, fmt.Errorf("%w: adjustments set an absolute balance, use AdjustBalance", errs.ErrInvalidTransactionType)
		}
		return "", 0, fmt.Errorf("%w: %q", errs.ErrInvalidTransactionType, txType)
	}

	amount, err := entity.ValidatePositiveAmount(req.Amount)
	if err != nil {
		return "", 0, err
	}

	delta, err := entity.SignedDelta(entity.TransactionType(txType), amount)
	if err != nil {
		return "", 0, err
	}
	return entity.TransactionType(txType), delta, nil
}

// ValidateAdjust checks an adjustment request and returns the target balance in cents
func (v *RequestValidator) ValidateAdjust(req usecase.AdjustBalanceRequest) (int64, error) {
	if req.WalletID == 0 {
		return 0, errs.ErrWalletNotFound
	}
	return entity.ValidateAndConvertBalance(req.TargetBalance)
}

// gamePlay is a validated game round
type gamePlay struct {
	bet    int64
	win    int64
	odds   decimal.Decimal
	result entity.GameResult
}

// ValidateGamePlay checks amounts, result and odds of a game round
func (v *RequestValidator) ValidateGamePlay(req usecase.GamePlayRequest) (*gamePlay, error) {
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if req.GameID == 0 {
		return nil, errs.ErrGameNotFound
	}

	bet, err := entity.ValidatePositiveAmount(req.BetAmount)
	if err != nil {
		return nil, err
	}

	win := int64(0)
	if strings.TrimSpace(req.WinAmount) != "" {
		if win, err = entity.ValidateAndConvertAmount(req.WinAmount); err != nil {
			return nil, err
		}
	}

	result := strings.TrimSpace(req.Result)
	if err := entity.ValidateOutcome(result, bet, win); err != nil {
		return nil, err
	}

	odds := decimal.Zero
	if raw := strings.TrimSpace(req.OddsAtPlay); raw != "" {
		if odds, err = decimal.NewFromString(raw); err != nil || odds.IsNegative() {
			return nil, fmt.Errorf("%w: odds must be a non-negative decimal", errs.ErrInvalidRequest)
		}
		if !entity.OddsFit(odds) {
			return nil, fmt.Errorf("%w: odds must have at most 2 decimal places", errs.ErrInvalidRequest)
		}
	}

	return &gamePlay{
		bet:    bet,
		win:    win,
		odds:   odds,
		result: entity.GameResult(result),
	}, nil
}
