package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

func TestValidateApply(t *testing.T) {
	v := NewRequestValidator()

	testCases := []struct {
		name     string
		req      usecase.ApplyTransactionRequest
		txType   entity.TransactionType
		delta    int64
		expected error
	}{
		{"credit", usecase.ApplyTransactionRequest{WalletID: 1, Type: "credit", Amount: "50"}, entity.TypeCredit, 5000, nil},
		{"win", usecase.ApplyTransactionRequest{WalletID: 1, Type: " win ", Amount: "0.01"}, entity.TypeWin, 1, nil},
		{"debit", usecase.ApplyTransactionRequest{WalletID: 1, Type: "debit", Amount: "5.50"}, entity.TypeDebit, -550, nil},
		{"loss", usecase.ApplyTransactionRequest{WalletID: 1, Type: "loss", Amount: "30.00"}, entity.TypeLoss, -3000, nil},
		{"negative amount", usecase.ApplyTransactionRequest{WalletID: 1, Type: "debit", Amount: "-5"}, "", 0, errs.ErrInvalidAmount},
		{"not a number", usecase.ApplyTransactionRequest{WalletID: 1, Type: "credit", Amount: "ten"}, "", 0, errs.ErrInvalidAmount},
		{"adjustment", usecase.ApplyTransactionRequest{WalletID: 1, Type: "adjustment", Amount: "5"}, "", 0, errs.ErrInvalidTransactionType},
		{"empty type", usecase.ApplyTransactionRequest{WalletID: 1, Amount: "5"}, "", 0, errs.ErrInvalidTransactionType},
		{"zero wallet", usecase.ApplyTransactionRequest{Type: "credit", Amount: "5"}, "", 0, errs.ErrWalletNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txType, delta, err := v.ValidateApply(tc.req)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.txType, txType)
			assert.Equal(t, tc.delta, delta)
		})
	}
}

func TestValidateAdjust(t *testing.T) {
	v := NewRequestValidator()

	target, err := v.ValidateAdjust(usecase.AdjustBalanceRequest{WalletID: 2, TargetBalance: "500"})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), target)

	target, err = v.ValidateAdjust(usecase.AdjustBalanceRequest{WalletID: 2, TargetBalance: "-12.34"})
	require.NoError(t, err)
	assert.Equal(t, int64(-1234), target)

	_, err = v.ValidateAdjust(usecase.AdjustBalanceRequest{WalletID: 2, TargetBalance: "1.234"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = v.ValidateAdjust(usecase.AdjustBalanceRequest{TargetBalance: "1"})
	assert.ErrorIs(t, err, errs.ErrWalletNotFound)
}

func TestValidateGamePlay(t *testing.T) {
	v := NewRequestValidator()

	play, err := v.ValidateGamePlay(usecase.GamePlayRequest{
		UserID:     1,
		GameID:     2,
		BetAmount:  "20",
		WinAmount:  "40",
		Result:     "win",
		OddsAtPlay: "2.5",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), play.bet)
	assert.Equal(t, int64(4000), play.win)
	assert.Equal(t, "2.5", play.odds.String())
	assert.Equal(t, entity.ResultWin, play.result)

	play, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "30", Result: "loss"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), play.win)
	assert.True(t, play.odds.IsZero())

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{GameID: 2, BetAmount: "1", Result: "loss"})
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, BetAmount: "1", Result: "loss"})
	assert.ErrorIs(t, err, errs.ErrGameNotFound)

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "0", Result: "loss"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "1", Result: "loss", OddsAtPlay: "x"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "1", Result: "loss", OddsAtPlay: "1.255"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "1", Result: "loss", OddsAtPlay: "100000000"})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	play, err = v.ValidateGamePlay(usecase.GamePlayRequest{UserID: 1, GameID: 2, BetAmount: "1", Result: "loss", OddsAtPlay: "1.250"})
	require.NoError(t, err)
	assert.Equal(t, "1.25", play.odds.String())
}
