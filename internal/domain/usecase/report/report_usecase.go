package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

const (
	// DefaultDashboardWindow is the number of recent rows the dashboard scans
	DefaultDashboardWindow = 1000

	defaultReportLimit = 50
	maxReportLimit     = 500
)

// ReportUseCase computes dashboard statistics and financial reports
type ReportUseCase struct {
	uow          persistence.UnitOfWork
	audit        usecase.AuditLogger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	window       int
}

var _ usecase.ReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase creates a new ReportUseCase. A non-positive window uses
// DefaultDashboardWindow.
func NewReportUseCase(
	uow persistence.UnitOfWork,
	audit usecase.AuditLogger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	window int,
) *ReportUseCase {
	if window <= 0 {
		window = DefaultDashboardWindow
	}
	return &ReportUseCase{
		uow:          uow,
		audit:        audit,
		timeProvider: timeProvider,
		logger:       logger,
		window:       window,
	}
}

// DashboardStats summarizes the most recent window of transactions and rounds.
// The money figures are approximate once history exceeds the window.
func (r *ReportUseCase) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	users, err := r.uow.GetUserRepository(ctx).Count(ctx)
	if err != nil {
		return nil, err
	}
	activeGames, err := r.uow.GetGameRepository(ctx).CountActive(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := r.uow.GetTransactionRepository(ctx).List(ctx, persistence.TransactionFilter{Limit: r.window})
	if err != nil {
		return nil, err
	}
	rounds, err := r.uow.GetGameHistoryRepository(ctx).List(ctx, persistence.GameHistoryFilter{Limit: r.window})
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{
		TotalUsers:        users,
		ActiveGames:       activeGames,
		TotalTransactions: int64(len(txs)),
		WindowSize:        r.window,
	}
	for _, tx := range txs {
		switch tx.Type {
		case entity.TypeCredit:
			stats.TotalDeposits += tx.Amount
		case entity.TypeDebit:
			stats.TotalWithdrawals += tx.Amount
		}
	}

	var wins int64
	for _, round := range rounds {
		stats.TotalBets += round.BetAmount
		stats.TotalWins += round.WinAmount
		if round.Result == entity.ResultWin {
			wins++
		}
	}
	stats.NetProfit = stats.TotalBets - stats.TotalWins
	stats.WinRate = entity.WinRate(wins, int64(len(rounds)))
	return stats, nil
}

// GenerateReport computes totals over the requested period and stores them
func (r *ReportUseCase) GenerateReport(ctx context.Context, req usecase.GenerateReportRequest) (*entity.Report, error) {
	now := r.timeProvider.Now()
	start, end, err := entity.ReportPeriod(req.ReportType, now, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	plays, err := r.uow.GetGameHistoryRepository(ctx).Totals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to total game history: %w", err)
	}
	byType, err := r.uow.GetTransactionRepository(ctx).Totals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to total transactions: %w", err)
	}

	breakdown := make(map[string]any, len(byType))
	var txCount int64
	for _, totals := range byType {
		txCount += totals.Count
		breakdown[string(totals.Type)] = map[string]any{
			"count":  totals.Count,
			"amount": entity.AmountInCentsToString(totals.Amount),
		}
	}

	report := &entity.Report{
		ReportType:        entity.ReportType(req.ReportType),
		PeriodStart:       start,
		PeriodEnd:         end,
		TotalBets:         plays.BetAmount,
		TotalWins:         plays.WinAmount,
		TotalLosses:       plays.LossAmount,
		NetProfit:         plays.BetAmount - plays.WinAmount,
		TotalTransactions: txCount,
		ReportData: map[string]any{
			"transactions":   breakdown,
			"rounds":         plays.Rounds,
			"winning_rounds": plays.Wins,
			"win_rate":       entity.WinRate(plays.Wins, plays.Rounds).StringFixed(1),
		},
		CreatedAt: now,
	}

	if err := r.uow.GetReportRepository(ctx).Create(ctx, report); err != nil {
		r.logger.Error("Failed to store report", map[string]any{
			"reportType": req.ReportType,
			"error":      err.Error(),
		})
		return nil, err
	}

	r.audit.Log(ctx, usecase.AuditEntry{
		Action:      entity.ActionCreate,
		EntityType:  entity.EntityReport,
		EntityID:    strconv.FormatUint(report.ID, 10),
		Description: fmt.Sprintf("Generated %s report", report.ReportType),
		NewData: map[string]any{
			"period_start": report.PeriodStart,
			"period_end":   report.PeriodEnd,
			"net_profit":   entity.AmountInCentsToString(report.NetProfit),
		},
	})

	r.logger.Info("Report generated", map[string]any{
		"reportId":   report.ID,
		"reportType": string(report.ReportType),
		"netProfit":  entity.AmountInCentsToString(report.NetProfit),
	})
	return report, nil
}

// GetReport returns a stored report
func (r *ReportUseCase) GetReport(ctx context.Context, reportID uint64) (*entity.Report, error) {
	if reportID == 0 {
		return nil, errs.ErrReportNotFound
	}
	return r.uow.GetReportRepository(ctx).GetByID(ctx, reportID)
}

// ListReports returns stored reports newest first
func (r *ReportUseCase) ListReports(ctx context.Context, limit int) ([]*entity.Report, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	} else if limit > maxReportLimit {
		limit = maxReportLimit
	}
	return r.uow.GetReportRepository(ctx).List(ctx, limit)
}
