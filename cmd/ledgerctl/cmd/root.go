package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

var (
	cfg       *config.Config
	cliLogger coreport.Logger
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the wallet ledger store",
	Long: `ledgerctl runs maintenance tasks against the ledger store configured by
WL_ENV and configs/<env>.yaml: schema migrations, replay of post-commit steps,
consistency checks and financial reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		// Maintenance never needs the HTTP metrics or a cross-process lock
		cfg.Metrics.Enabled = false
		cfg.Ledger.LockBackend = app.LockBackendNone

		level := cfg.Logger.Level
		if logLevel != "" {
			level = logLevel
		}
		cliLogger, err = logger.NewZapLogger(logger.Options{Level: level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cliLogger != nil {
			cliLogger.Flush()
		}
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logger.level (debug, info, warn, error)")
}

// withApp builds the ledger, runs fn and releases every resource
func withApp(ctx context.Context, fn func(*app.App) error) error {
	a, err := app.New(ctx, cfg, cliLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			cliLogger.Warn("Failed to release resources", map[string]any{"error": err.Error()})
		}
	}()
	return fn(a)
}
