package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/wire"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  "Apply pending schema migrations. Every other command also migrates on first use; this is for running it explicitly.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wire.Config()
		database := wire.DB()

		v, _, err := db.SchemaVersion(database, cfg.Database.Driver, cfg.Database.URL)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Schema at version %d (%s)\n", v, cfg.Database.Driver)
		return nil
	},
}

var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo fixtures into an empty store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wire.Config()
		if err := db.SeedFixtures(context.Background(), wire.DB(), cfg.Database.Driver); err != nil {
			return fmt.Errorf("failed to seed fixtures (is the store already populated?): %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Seeded demo fixtures")
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbSeedCmd)
}

// DBCmd returns the db command
func DBCmd() *cobra.Command {
	return dbCmd
}
