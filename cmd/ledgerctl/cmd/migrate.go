package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/app"
)

var seedAfterMigrate bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema up to date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Database.AutoMigrate = true

		return withApp(cmd.Context(), func(a *app.App) error {
			if seedAfterMigrate {
				if err := a.Seed(cmd.Context()); err != nil {
					return fmt.Errorf("failed to seed development data: %w", err)
				}
			}

			version, err := a.DB.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %s\n", version)
			return nil
		})
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedAfterMigrate, "seed", false, "create the development games and users")
	rootCmd.AddCommand(migrateCmd)
}
