package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memstore"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

var reportNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func clockAt(t *testing.T, now time.Time) coreport.TimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(now).Maybe()
	return tp
}

// seedActivity writes one funded wallet with a few settled rounds
func seedActivity(t *testing.T, store *memstore.Store) {
	t.Helper()
	ctx := context.Background()
	at := clockAt(t, reportNow.Add(-2*time.Hour))

	user, err := entity.NewUser("vera", "vera@example.com", "", "", at)
	require.NoError(t, err)
	require.NoError(t, store.GetUserRepository(ctx).Create(ctx, user))
	wallet, err := entity.NewWallet(user.ID, at)
	require.NoError(t, err)
	require.NoError(t, store.GetWalletRepository(ctx).Create(ctx, wallet))

	game, err := entity.NewGame(entity.GameAttributes{
		Name: "Coin Flip", MinBet: 50, MaxBet: 100000, Odds: decimal.RequireFromString("1.95"),
	}, at)
	require.NoError(t, err)
	require.NoError(t, store.GetGameRepository(ctx).Create(ctx, game))

	ledger := []struct {
		txType entity.TransactionType
		delta  int64
	}{
		{entity.TypeCredit, 50000},
		{entity.TypeDebit, -5000},
		{entity.TypeWin, 2000},
		{entity.TypeLoss, -3000},
	}
	for _, entry := range ledger {
		tx, err := entity.NewTransaction(wallet, entry.txType, entry.delta, at)
		require.NoError(t, err)
		version := wallet.Version
		require.NoError(t, wallet.ApplyDelta(entry.delta, at))
		require.NoError(t, store.GetWalletRepository(ctx).UpdateBalance(ctx, wallet, version))
		require.NoError(t, store.GetTransactionRepository(ctx).Create(ctx, tx))
	}

	rounds := []entity.GameHistory{
		{UserID: user.ID, GameID: game.ID, RoundID: "a", BetAmount: 2000, WinAmount: 4000, Result: entity.ResultWin},
		{UserID: user.ID, GameID: game.ID, RoundID: "b", BetAmount: 3000, Result: entity.ResultLoss},
		{UserID: user.ID, GameID: game.ID, RoundID: "c", BetAmount: 1000, Result: entity.ResultLoss},
	}
	for i := range rounds {
		rounds[i].PlayedAt = at.Now()
		require.NoError(t, store.GetGameHistoryRepository(ctx).Create(ctx, &rounds[i]))
	}
}

func TestDashboardStats(t *testing.T) {
	store := memstore.New(logger.NewNoopLogger())
	seedActivity(t, store)

	reports := NewReportUseCase(store, usecasemocks.NewMockAuditLogger(t), clockAt(t, reportNow), logger.NewNoopLogger(), 0)
	stats, err := reports.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveGames)
	assert.Equal(t, int64(50000), stats.TotalDeposits)
	assert.Equal(t, int64(5000), stats.TotalWithdrawals)
	assert.Equal(t, int64(6000), stats.TotalBets)
	assert.Equal(t, int64(4000), stats.TotalWins)
	assert.Equal(t, int64(2000), stats.NetProfit)
	assert.Equal(t, "33.3", stats.WinRate.StringFixed(1))
	assert.Equal(t, int64(4), stats.TotalTransactions)
	assert.Equal(t, DefaultDashboardWindow, stats.WindowSize)
}

func TestDashboardStatsHonorsWindow(t *testing.T) {
	store := memstore.New(logger.NewNoopLogger())
	seedActivity(t, store)

	reports := NewReportUseCase(store, usecasemocks.NewMockAuditLogger(t), clockAt(t, reportNow), logger.NewNoopLogger(), 2)
	stats, err := reports.DashboardStats(context.Background())
	require.NoError(t, err)

	// newest two transactions are the win and the loss
	assert.Equal(t, int64(2), stats.TotalTransactions)
	assert.Equal(t, int64(0), stats.TotalDeposits)
	assert.Equal(t, int64(4000), stats.TotalBets)
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.NewNoopLogger())
	seedActivity(t, store)

	audit := usecasemocks.NewMockAuditLogger(t)
	audit.EXPECT().Log(mock.Anything, mock.MatchedBy(func(e usecase.AuditEntry) bool {
		return e.Action == entity.ActionCreate && e.EntityType == entity.EntityReport
	})).Once()
	reports := NewReportUseCase(store, audit, clockAt(t, reportNow), logger.NewNoopLogger(), 0)

	report, err := reports.GenerateReport(ctx, usecase.GenerateReportRequest{ReportType: "daily"})
	require.NoError(t, err)

	assert.Equal(t, entity.ReportDaily, report.ReportType)
	assert.Equal(t, reportNow.AddDate(0, 0, -1), report.PeriodStart)
	assert.Equal(t, int64(6000), report.TotalBets)
	assert.Equal(t, int64(4000), report.TotalWins)
	assert.Equal(t, int64(4000), report.TotalLosses)
	assert.Equal(t, int64(2000), report.NetProfit)
	assert.Equal(t, int64(4), report.TotalTransactions)
	assert.Equal(t, "33.3", report.ReportData["win_rate"])

	breakdown := report.ReportData["transactions"].(map[string]any)
	assert.Equal(t, map[string]any{"count": int64(1), "amount": "500.00"}, breakdown["credit"])

	stored, err := reports.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.NetProfit, stored.NetProfit)

	list, err := reports.ListReports(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGenerateReportCustomPeriod(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(logger.NewNoopLogger())
	seedActivity(t, store)

	audit := usecasemocks.NewMockAuditLogger(t)
	audit.EXPECT().Log(mock.Anything, mock.Anything).Once()
	reports := NewReportUseCase(store, audit, clockAt(t, reportNow), logger.NewNoopLogger(), 0)

	// the period ends before any activity
	start := reportNow.AddDate(0, 0, -10)
	end := reportNow.AddDate(0, 0, -5)
	report, err := reports.GenerateReport(ctx, usecase.GenerateReportRequest{
		ReportType:  "custom",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.TotalBets)
	assert.Equal(t, int64(0), report.TotalTransactions)

	_, err = reports.GenerateReport(ctx, usecase.GenerateReportRequest{ReportType: "custom", PeriodStart: &end, PeriodEnd: &start})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = reports.GetReport(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrReportNotFound)
}
