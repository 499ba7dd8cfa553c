package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/accounting"
)

var errLedgerInconsistent = errors.New("ledger is inconsistent")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every wallet chain and the operating balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app.App) error {
			verifier := accounting.NewVerifier(a.DB.UnitOfWork(), a.TimeProvider, cliLogger.Named("verify"))
			result, err := verifier.Verify(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wallets %d, transactions %d\n", result.Wallets, result.Transactions)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  wallet=%d tx=%d: %s\n", issue.WalletID, issue.TransactionID, issue.Problem)
			}

			if !result.AggregatesMatchLog() {
				fmt.Fprintf(out, "operating balance lags the log (stored profit %s, replayed %s); run ledgerctl replay\n",
					entity.AmountInCentsToString(result.Stored.OperatingProfit),
					entity.AmountInCentsToString(result.Replayed.OperatingProfit))
			}

			if !result.OK() {
				return fmt.Errorf("%w: %d issues", errLedgerInconsistent, len(result.Issues))
			}
			fmt.Fprintln(out, "ok")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
