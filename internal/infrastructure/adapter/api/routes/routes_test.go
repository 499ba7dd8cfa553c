package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/metrics"
	usecasemocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/usecase"
)

type fakeStore struct {
	pingErr error
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }
func (f *fakeStore) Driver() string             { return "memory" }
func (f *fakeStore) SchemaVersion(context.Context) (string, error) {
	return "", errors.New("no schema")
}

type testServer struct {
	router  *gin.Engine
	ledger  *usecasemocks.MockLedgerUseCase
	users   *usecasemocks.MockUserUseCase
	catalog *usecasemocks.MockGameCatalog
	reports *usecasemocks.MockReportUseCase
	store   *fakeStore
	metrics *metrics.PrometheusMetrics
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	s := &testServer{
		router:  gin.New(),
		ledger:  usecasemocks.NewMockLedgerUseCase(t),
		users:   usecasemocks.NewMockUserUseCase(t),
		catalog: usecasemocks.NewMockGameCatalog(t),
		reports: usecasemocks.NewMockReportUseCase(t),
		store:   &fakeStore{},
		metrics: metrics.NewPrometheusMetrics("ledger"),
	}

	SetupMiddlewares(s.router, log, s.metrics)
	SetupRoutes(s.router, Handlers{
		User:        handler.NewUserHandler(s.users, s.ledger, log),
		Transaction: handler.NewTransactionHandler(s.ledger, log),
		Game:        handler.NewGameHandler(s.catalog, s.ledger, log),
		Accounting:  handler.NewAccountingHandler(s.ledger, s.reports, log),
		Health:      handler.NewHealthHandler(s.store, log),
		Metrics:     s.metrics.Handler(),
	})
	return s
}

func (s *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestApplyTransaction_Success(t *testing.T) {
	s := newTestServer(t)
	actorID := uint64(42)

	s.ledger.EXPECT().
		ApplyTransaction(mock.Anything, usecase.ApplyTransactionRequest{
			WalletID:    7,
			Type:        "credit",
			Amount:      "50.00",
			ReferenceID: "dep-1",
		}).
		RunAndReturn(func(ctx context.Context, req usecase.ApplyTransactionRequest) (*entity.Transaction, error) {
			actor := coreport.ActorFromContext(ctx)
			require.NotNil(t, actor.UserID)
			assert.Equal(t, actorID, *actor.UserID)
			assert.NotEmpty(t, actor.IPAddress)
			assert.Equal(t, "req-1", coreport.RequestIDFromContext(ctx))

			return &entity.Transaction{
				ID:            1,
				UserID:        3,
				WalletID:      7,
				Type:          entity.TypeCredit,
				Amount:        5000,
				BalanceBefore: 10000,
				BalanceAfter:  15000,
				ReferenceID:   "dep-1",
			}, nil
		})

	w := s.do(http.MethodPost, "/wallets/7/transactions",
		`{"type":"credit","amount":"50.00","referenceId":"dep-1"}`,
		map[string]string{"X-Actor-ID": "42", "X-Request-ID": "req-1"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50.00", resp.Amount)
	assert.Equal(t, "100.00", resp.BalanceBefore)
	assert.Equal(t, "150.00", resp.BalanceAfter)
	assert.Equal(t, "credit", resp.Type)
}

func TestApplyTransaction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"wallet not found", errs.ErrWalletNotFound, http.StatusNotFound, errs.CodeWalletNotFound},
		{"invalid amount", errs.ErrNegativeAmount, http.StatusBadRequest, errs.CodeInvalidAmount},
		{"duplicate reference", errs.ErrDuplicateReference, http.StatusConflict, errs.CodeDuplicateReference},
		{"conflict", errs.ErrConcurrentModification, http.StatusConflict, errs.CodeConcurrentModification},
		{"bet out of range", errs.NewBetLimitError(1, "0.50", "1.00", "100.00"), http.StatusUnprocessableEntity, errs.CodeBetOutOfRange},
		{"game not active", errs.ErrGameNotActive, http.StatusUnprocessableEntity, errs.CodeGameNotActive},
		{"storage unavailable", errs.ErrStorageUnavailable, http.StatusServiceUnavailable, errs.CodeStorageUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, errs.CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.ledger.EXPECT().ApplyTransaction(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := s.do(http.MethodPost, "/wallets/1/transactions", `{"type":"debit","amount":"5.00"}`, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestApplyTransaction_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		headers map[string]string
	}{
		{"non numeric wallet", "/wallets/abc/transactions", `{"type":"credit","amount":"1"}`, nil},
		{"zero wallet", "/wallets/0/transactions", `{"type":"credit","amount":"1"}`, nil},
		{"unknown type", "/wallets/1/transactions", `{"type":"bonus","amount":"1"}`, nil},
		{"adjustment through transactions", "/wallets/1/transactions", `{"type":"adjustment","amount":"1"}`, nil},
		{"missing amount", "/wallets/1/transactions", `{"type":"credit"}`, nil},
		{"bad actor header", "/wallets/1/transactions", `{"type":"credit","amount":"1"}`, map[string]string{"X-Actor-ID": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.do(http.MethodPost, tt.path, tt.body, tt.headers)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
		})
	}
}

func TestAdjustBalance(t *testing.T) {
	s := newTestServer(t)
	s.ledger.EXPECT().
		AdjustBalance(mock.Anything, usecase.AdjustBalanceRequest{WalletID: 3, TargetBalance: "500.00"}).
		Return(&entity.Transaction{
			ID: 9, WalletID: 3, Type: entity.TypeAdjustment,
			Amount: 36000, BalanceBefore: 14000, BalanceAfter: 50000,
		}, nil)

	w := s.do(http.MethodPost, "/wallets/3/adjustments", `{"targetBalance":"500.00"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "360.00", resp.Amount)
	assert.Equal(t, "500.00", resp.BalanceAfter)
}

func TestListTransactions_Filters(t *testing.T) {
	s := newTestServer(t)
	userID, gameID := uint64(5), uint64(2)
	s.ledger.EXPECT().
		ListTransactions(mock.Anything, persistence.TransactionFilter{UserID: &userID, GameID: &gameID, Limit: 10}).
		Return([]*entity.Transaction{{ID: 2, Type: entity.TypeWin, Amount: 2000}, {ID: 1, Type: entity.TypeLoss, Amount: 3000}}, nil)

	w := s.do(http.MethodGet, "/transactions?userId=5&gameId=2&limit=10", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uint64(2), resp[0].ID)

	bad := s.do(http.MethodGet, "/transactions?limit=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestCreateUserAndWallet(t *testing.T) {
	s := newTestServer(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	s.users.EXPECT().
		CreateUser(mock.Anything, usecase.CreateUserRequest{Username: "alice", Email: "alice@example.com", InitialBalance: "100"}).
		Return(
			&entity.User{ID: 1, Username: "alice", Email: "alice@example.com", Status: entity.UserStatusActive, CreatedAt: now},
			entity.RestoreWallet(4, 1, 10000, 10000, 0, 1, now, now),
			nil,
		)
	s.ledger.EXPECT().GetWallet(mock.Anything, uint64(1)).
		Return(entity.RestoreWallet(4, 1, 10000, 10000, 0, 1, now, now), nil)
	s.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, nil, errs.ErrDuplicateUser)

	w := s.do(http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com","initialBalance":"100"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.CreateUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "alice", created.User.Username)
	assert.Equal(t, "100.00", created.Wallet.Balance)

	w = s.do(http.MethodGet, "/users/1/wallet", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var wallet dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wallet))
	assert.Equal(t, uint64(4), wallet.ID)
	assert.Equal(t, "100.00", wallet.TotalCredits)

	w = s.do(http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateUserStatus(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().UpdateStatus(mock.Anything, uint64(1), "suspended").
		Return(&entity.User{ID: 1, Username: "alice", Status: entity.UserStatusSuspended}, nil)
	s.users.EXPECT().UpdateStatus(mock.Anything, uint64(1), "frozen").
		Return(nil, errs.ErrInvalidUserStatus)
	s.users.EXPECT().GetUser(mock.Anything, uint64(2)).Return(nil, errs.ErrUserNotFound)

	w := s.do(http.MethodPatch, "/users/1/status", `{"status":"suspended"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, "/users/1/status", `{"status":"frozen"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/users/2", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errs.CodeUserNotFound, decodeError(t, w).Code)
}

func TestRecordGamePlay(t *testing.T) {
	s := newTestServer(t)
	txID := uint64(11)

	s.ledger.EXPECT().
		RecordGamePlay(mock.Anything, usecase.GamePlayRequest{
			UserID: 1, GameID: 2, BetAmount: "30.00", WinAmount: "0", Result: "loss",
		}).
		Return(&entity.GameHistory{
			ID: 5, UserID: 1, GameID: 2, TransactionID: &txID, RoundID: "r-1",
			BetAmount: 3000, Result: entity.ResultLoss, OddsAtPlay: decimal.RequireFromString("1.95"),
		}, nil)

	w := s.do(http.MethodPost, "/game-plays", `{"userId":1,"gameId":2,"betAmount":"30.00","result":"loss"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.GameHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "30.00", resp.BetAmount)
	assert.Equal(t, "0.00", resp.WinAmount)
	assert.Equal(t, "1.95", resp.OddsAtPlay)
	require.NotNil(t, resp.TransactionID)
	assert.Equal(t, txID, *resp.TransactionID)

	w = s.do(http.MethodPost, "/game-plays", `{"userId":1,"gameId":2,"betAmount":"30.00","result":"draw"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameCatalogRoutes(t *testing.T) {
	s := newTestServer(t)
	game := &entity.Game{
		ID: 3, Name: "Dice", MinBet: 100, MaxBet: 100000,
		Odds: decimal.RequireFromString("1.95"), Status: entity.GameStatusActive,
	}

	s.catalog.EXPECT().ListGames(mock.Anything, "active").Return([]*entity.Game{game}, nil)
	s.catalog.EXPECT().GetGame(mock.Anything, uint64(3)).Return(game, nil)
	s.catalog.EXPECT().DeleteGame(mock.Anything, uint64(3)).Return(nil)
	s.catalog.EXPECT().CreateGame(mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidGameData)

	w := s.do(http.MethodGet, "/games?status=active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var games []dto.GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "1.00", games[0].MinBet)
	assert.Equal(t, "1000.00", games[0].MaxBet)

	w = s.do(http.MethodGet, "/games/3", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, "/games/3", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/games", `{"name":"Bad","minBet":"10","maxBet":"1","odds":"2"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errs.CodeInvalidGameData, decodeError(t, w).Code)
}

func TestAccountingRoutes(t *testing.T) {
	s := newTestServer(t)

	s.ledger.EXPECT().GetOperatingBalance(mock.Anything).Return(&entity.OperatingBalance{
		TotalDeposits: 5000, TotalBets: 5000, TotalPayouts: 4000, OperatingProfit: 1000,
	}, nil)
	s.ledger.EXPECT().ListSystemLogs(mock.Anything, 5).Return([]*entity.SystemLog{
		{ID: 2, Action: entity.ActionBalanceChange, EntityType: entity.EntityTransaction, EntityID: "1"},
	}, nil)
	s.reports.EXPECT().DashboardStats(mock.Anything).Return(&entity.DashboardStats{
		TotalUsers: 3, WinRate: decimal.RequireFromString("50"), WindowSize: 1000,
	}, nil)
	s.reports.EXPECT().GetReport(mock.Anything, uint64(8)).Return(nil, errs.ErrReportNotFound)

	w := s.do(http.MethodGet, "/operating-balance", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var balance dto.OperatingBalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, "10.00", balance.OperatingProfit)

	w = s.do(http.MethodGet, "/system-logs?limit=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []dto.SystemLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "balance_change", logs[0].Action)

	w = s.do(http.MethodGet, "/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.DashboardStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, "50.0", stats.WinRate)

	w = s.do(http.MethodGet, "/reports/8", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateReport(t *testing.T) {
	s := newTestServer(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	s.reports.EXPECT().
		GenerateReport(mock.Anything, mock.MatchedBy(func(req usecase.GenerateReportRequest) bool {
			return req.ReportType == "custom" && req.PeriodStart != nil && req.PeriodStart.Equal(start)
		})).
		Return(&entity.Report{ID: 1, ReportType: entity.ReportCustom, PeriodStart: start, PeriodEnd: end, NetProfit: -250}, nil)

	w := s.do(http.MethodPost, "/reports",
		`{"reportType":"custom","periodStart":"2026-01-01T00:00:00Z","periodEnd":"2026-01-02T00:00:00Z"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "-2.50", resp.NetProfit)

	w = s.do(http.MethodPost, "/reports", `{"reportType":"yearly"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "memory", health.Driver)

	s.store.pingErr = errs.ErrStorageUnavailable
	w = s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `ledger_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `ledger_http_requests_total{method="GET",path="/health",status="503"} 1`)
}

func TestUnmatchedRouteIsNotObserved(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	count, err := testutil.GatherAndCount(s.metrics.Registry(), "ledger_http_requests_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t)
	s.ledger.EXPECT().GetOperatingBalance(mock.Anything).RunAndReturn(
		func(context.Context) (*entity.OperatingBalance, error) { panic("boom") })

	w := s.do(http.MethodGet, "/operating-balance", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errs.CodeInternalServer, decodeError(t, w).Code)
}
