package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
)

var replayGrace time.Duration

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-drive aggregation and audit entries from the transaction log",
	Long: `replay folds every transaction after the reconcile checkpoint into the
operating balance and writes its missing balance_change audit entry. Both steps
are idempotent per transaction, so replay can be repeated safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("grace") {
			cfg.Ledger.ReconcileGrace = replayGrace
		}

		return withApp(cmd.Context(), func(a *app.App) error {
			result, err := a.Reconciler.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Audit.Flush(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "scanned %d, aggregated %d, audited %d, checkpoint %d\n",
				result.Scanned, result.Aggregated, result.Audited, result.Checkpoint)
			return nil
		})
	},
}

func init() {
	replayCmd.Flags().DurationVar(&replayGrace, "grace", 0, "skip transactions younger than this (default reconcileGrace)")
	rootCmd.AddCommand(replayCmd)
}
