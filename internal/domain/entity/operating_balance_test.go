package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatingDeltaFor(t *testing.T) {
	testCases := []struct {
		txType   TransactionType
		expected OperatingDelta
	}{
		{TypeCredit, OperatingDelta{Deposits: 500}},
		{TypeDebit, OperatingDelta{Withdrawals: 500}},
		{TypeLoss, OperatingDelta{Bets: 500}},
		{TypeWin, OperatingDelta{Payouts: 500}},
		{TypeAdjustment, OperatingDelta{}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.txType), func(t *testing.T) {
			assert.Equal(t, tc.expected, OperatingDeltaFor(&Transaction{Type: tc.txType, Amount: 500}))
		})
	}
	assert.True(t, OperatingDeltaFor(&Transaction{Type: TypeAdjustment, Amount: 10}).IsZero())
}

func TestOperatingBalanceApply(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ob := &OperatingBalance{}

	ob.Apply(OperatingDelta{Bets: 3000}, now)
	ob.Apply(OperatingDelta{Payouts: 2000}, now)
	ob.Apply(OperatingDelta{Deposits: 5000}, now)

	assert.Equal(t, int64(1000), ob.OperatingProfit)
	assert.Equal(t, int64(5000), ob.TotalDeposits)
	assert.True(t, ob.IsConsistent())
	assert.Equal(t, now, ob.UpdatedAt)

	ob.Apply(OperatingDelta{Payouts: 4000}, now)
	assert.Equal(t, int64(-3000), ob.OperatingProfit)
	assert.True(t, ob.IsConsistent())
}

func TestWinRate(t *testing.T) {
	assert.True(t, WinRate(0, 0).Equal(decimal.Zero))
	assert.Equal(t, "33.3", WinRate(1, 3).StringFixed(1))
	assert.Equal(t, "66.7", WinRate(2, 3).StringFixed(1))
	assert.Equal(t, "100.0", WinRate(5, 5).StringFixed(1))
}

func TestReportPeriod(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	start, end, err := ReportPeriod("weekly", now, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)

	from := now.Add(-time.Hour)
	start, end, err = ReportPeriod("custom", now, &from, &now)
	require.NoError(t, err)
	assert.Equal(t, from, start)
	assert.Equal(t, now, end)

	_, _, err = ReportPeriod("custom", now, &now, &from)
	assert.Error(t, err)

	_, _, err = ReportPeriod("yearly", now, nil, nil)
	assert.Error(t, err)
}
