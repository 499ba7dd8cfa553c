package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:       "report [daily|weekly|monthly|custom]",
	Short:     "Generate and store a financial report",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"daily", "weekly", "monthly", "custom"},
	RunE: func(cmd *cobra.Command, args []string) error {
		req := usecase.GenerateReportRequest{ReportType: args[0]}
		if reportFrom != "" {
			from, err := time.Parse(time.RFC3339, reportFrom)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			req.PeriodStart = &from
		}
		if reportTo != "" {
			to, err := time.Parse(time.RFC3339, reportTo)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
			req.PeriodEnd = &to
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			report, err := a.Reports.GenerateReport(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.Audit.Flush(cmd.Context()); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewReportResponse(report))
		})
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "period start for custom reports (RFC3339)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "period end for custom reports (RFC3339)")
	rootCmd.AddCommand(reportCmd)
}
