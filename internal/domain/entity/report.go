package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// ReportType is the period granularity of a financial report
type ReportType string

// Report types
const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
	ReportCustom  ReportType = "custom"
)

// Report is a stored financial summary over [PeriodStart, PeriodEnd)
type Report struct {
	ID                uint64
	ReportType        ReportType
	PeriodStart       time.Time
	PeriodEnd         time.Time
	TotalBets         int64
	TotalWins         int64
	TotalLosses       int64
	NetProfit         int64
	TotalTransactions int64
	ReportData        map[string]any
	CreatedAt         time.Time
}

// ReportPeriod resolves the period for a report type ending at now.
// Custom reports use the supplied bounds.
func ReportPeriod(reportType string, now time.Time, start, end *time.Time) (time.Time, time.Time, error) {
	switch ReportType(reportType) {
	case ReportDaily:
		return now.AddDate(0, 0, -1), now, nil
	case ReportWeekly:
		return now.AddDate(0, 0, -7), now, nil
	case ReportMonthly:
		return now.AddDate(0, -1, 0), now, nil
	case ReportCustom:
		if start == nil || end == nil || !start.Before(*end) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: custom report needs period_start < period_end", errs.ErrInvalidRequest)
		}
		return *start, *end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report type %q", errs.ErrInvalidRequest, reportType)
	}
}

// TransactionTotals is the per-type sum and count of transactions in a range
type TransactionTotals struct {
	Type   TransactionType
	Count  int64
	Amount int64
}

// GamePlayTotals summarizes rounds in a range
type GamePlayTotals struct {
	Rounds     int64
	Wins       int64
	BetAmount  int64
	WinAmount  int64
	LossAmount int64
}

// DashboardStats is the windowed read-side projection of recent activity.
// Only the most recent WindowSize rows are scanned, so the money figures are
// approximate for long histories. OperatingBalance holds the exact totals.
type DashboardStats struct {
	TotalUsers        int64
	ActiveGames       int64
	TotalDeposits     int64
	TotalWithdrawals  int64
	TotalBets         int64
	TotalWins         int64
	NetProfit         int64
	WinRate           decimal.Decimal
	TotalTransactions int64
	WindowSize        int
}

// WinRate returns wins/rounds as a percentage rounded to one decimal place
func WinRate(wins, rounds int64) decimal.Decimal {
	if rounds == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(wins).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(rounds)).
		Round(1)
}
