package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.Output,
		WithCaller: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Server terminated with error", map[string]any{"error": err.Error()})
		appLogger.Flush()
		os.Exit(1)
	}

	appLogger.Info("Server exited gracefully", nil)
	appLogger.Flush()
}

// run serves until ctx is cancelled, then drains in-flight work
func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) error {
	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			appLogger.Error("Failed to release resources", map[string]any{"error": err.Error()})
		}
	}()

	if cfg.Database.SeedData {
		if err := a.Seed(ctx); err != nil {
			appLogger.Warn("Failed to seed development data", map[string]any{"error": err.Error()})
		}
	}

	router := gin.New()
	var observer middleware.HTTPObserver
	if a.Prometheus != nil {
		observer = a.Prometheus
	}
	routes.SetupMiddlewares(router, appLogger.Named("http"), observer)

	h := routes.Handlers{
		User:        handler.NewUserHandler(a.Users, a.Ledger, appLogger),
		Transaction: handler.NewTransactionHandler(a.Ledger, appLogger),
		Game:        handler.NewGameHandler(a.Catalog, a.Ledger, appLogger),
		Accounting:  handler.NewAccountingHandler(a.Ledger, a.Reports, appLogger),
		Health:      handler.NewHealthHandler(a.DB, appLogger),
		MetricsPath: cfg.Metrics.Path,
	}
	if a.Prometheus != nil {
		h.Metrics = a.Prometheus.Handler()
	}
	routes.SetupRoutes(router, h)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": a.DB.Driver(),
			"lock":   cfg.Ledger.LockBackend,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.Reconciler.Run(gctx)
	})

	g.Go(func() error {
		return a.RunLockJanitor(gctx, cfg.Ledger.LockTTL)
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		}
		return nil
	})

	return g.Wait()
}
