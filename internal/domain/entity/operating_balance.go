package entity

import "time"

// OperatingBalanceID is the well-known key of the singleton operating balance row
const OperatingBalanceID uint64 = 1

// OperatingBalance holds the platform-wide totals. OperatingProfit always
// equals TotalBets - TotalPayouts.
type OperatingBalance struct {
	TotalDeposits    int64
	TotalWithdrawals int64
	TotalBets        int64
	TotalPayouts     int64
	OperatingProfit  int64
	// LastReconciledTransactionID is the reconciler checkpoint
	LastReconciledTransactionID uint64
	UpdatedAt                   time.Time
}

// OperatingDelta is the contribution of one transaction to the operating balance
type OperatingDelta struct {
	Deposits    int64
	Withdrawals int64
	Bets        int64
	Payouts     int64
}

// IsZero reports whether the delta changes nothing
func (d OperatingDelta) IsZero() bool {
	return d == OperatingDelta{}
}

// OperatingDeltaFor maps a committed transaction to its aggregate contribution.
// Adjustments are balance corrections and contribute nothing.
func OperatingDeltaFor(tx *Transaction) OperatingDelta {
	switch tx.Type {
	case TypeCredit:
		return OperatingDelta{Deposits: tx.Amount}
	case TypeDebit:
		return OperatingDelta{Withdrawals: tx.Amount}
	case TypeLoss:
		return OperatingDelta{Bets: tx.Amount}
	case TypeWin:
		return OperatingDelta{Payouts: tx.Amount}
	default:
		return OperatingDelta{}
	}
}

// Apply adds the delta and recomputes the operating profit
func (o *OperatingBalance) Apply(d OperatingDelta, now time.Time) {
	o.TotalDeposits += d.Deposits
	o.TotalWithdrawals += d.Withdrawals
	o.TotalBets += d.Bets
	o.TotalPayouts += d.Payouts
	o.OperatingProfit = o.TotalBets - o.TotalPayouts
	o.UpdatedAt = now
}

// IsConsistent checks the profit identity
func (o *OperatingBalance) IsConsistent() bool {
	return o.OperatingProfit == o.TotalBets-o.TotalPayouts
}
