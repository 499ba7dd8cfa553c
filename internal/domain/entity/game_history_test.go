package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

func TestValidateOutcome(t *testing.T) {
	testCases := []struct {
		name   string
		result string
		bet    int64
		win    int64
		err    error
	}{
		{"win with payout", "win", 2000, 4000, nil},
		{"win below stake", "win", 2000, 500, nil},
		{"loss without payout", "loss", 3000, 0, nil},
		{"win without payout", "win", 2000, 0, errs.ErrInvalidResult},
		{"loss with payout", "loss", 3000, 100, errs.ErrInvalidResult},
		{"unknown result", "draw", 1000, 0, errs.ErrInvalidResult},
		{"zero bet", "loss", 0, 0, errs.ErrInvalidAmount},
		{"negative win", "win", 100, -1, errs.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOutcome(tc.result, tc.bet, tc.win)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNetDeltaAndType(t *testing.T) {
	net, err := NetDelta(2000, 4000)
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), net)
	assert.Equal(t, TypeWin, NetTransactionType(net))

	net, err = NetDelta(3000, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(-3000), net)
	assert.Equal(t, TypeLoss, NetTransactionType(net))

	assert.Equal(t, TypeWin, NetTransactionType(0))
}

func TestGameHistoryLinkTransaction(t *testing.T) {
	h := &GameHistory{}
	h.LinkTransaction(&Transaction{ID: 77})
	if assert.NotNil(t, h.TransactionID) {
		assert.Equal(t, uint64(77), *h.TransactionID)
	}
	assert.Equal(t, uint64(77), h.Snapshot()["transaction_id"])

	h.LinkTransaction(nil)
	assert.Nil(t, h.TransactionID)
}
