package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	User        *handler.UserHandler
	Transaction *handler.TransactionHandler
	Game        *handler.GameHandler
	Accounting  *handler.AccountingHandler
	Health      *handler.HealthHandler

	// Metrics serves the prometheus exposition; nil disables /metrics
	Metrics     http.Handler
	MetricsPath string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	users := router.Group("/users")
	{
		users.POST("", h.User.CreateUser)
		users.GET("/:userId", h.User.GetUser)
		users.PATCH("/:userId/status", h.User.UpdateStatus)
		users.GET("/:userId/wallet", h.User.GetWallet)
	}

	wallets := router.Group("/wallets")
	{
		wallets.POST("/:walletId/transactions", h.Transaction.ApplyTransaction)
		wallets.POST("/:walletId/adjustments", h.Transaction.AdjustBalance)
	}
	router.GET("/transactions", h.Transaction.ListTransactions)

	games := router.Group("/games")
	{
		games.GET("", h.Game.ListGames)
		games.POST("", h.Game.CreateGame)
		games.GET("/:gameId", h.Game.GetGame)
		games.PUT("/:gameId", h.Game.UpdateGame)
		games.DELETE("/:gameId", h.Game.DeleteGame)
	}
	router.POST("/game-plays", h.Game.RecordGamePlay)
	router.GET("/game-history", h.Game.ListGameHistory)

	router.GET("/operating-balance", h.Accounting.GetOperatingBalance)
	router.GET("/system-logs", h.Accounting.ListSystemLogs)
	router.GET("/dashboard/stats", h.Accounting.DashboardStats)

	reports := router.Group("/reports")
	{
		reports.GET("", h.Accounting.ListReports)
		reports.POST("", h.Accounting.GenerateReport)
		reports.GET("/:reportId", h.Accounting.GetReport)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// observer may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.HTTPObserver) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, "/health"))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
	router.Use(middleware.CORS())
	router.Use(middleware.Actor())
}
