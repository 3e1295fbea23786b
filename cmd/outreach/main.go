package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/cli"
	"github.com/example/outreach/internal/version"
	"github.com/example/outreach/internal/wire"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "outreach",
		Short:   "Outreach - donors, volunteers, and campaigns for a grassroots organization",
		Version: version.String(),
		Long: `Outreach records who gives, who volunteers, and which campaigns they support.
It reports budget coverage, engagement scores, and per-person activity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetConfigPath(configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.outreach/config.yaml)")

	// Mutations
	rootCmd.AddCommand(cli.DonorCmd())
	rootCmd.AddCommand(cli.VolunteerCmd())
	rootCmd.AddCommand(cli.EntityCmd())
	rootCmd.AddCommand(cli.CampaignCmd())
	rootCmd.AddCommand(cli.DonationCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Reports
	rootCmd.AddCommand(cli.ReportCmd())

	// Maintenance
	rootCmd.AddCommand(cli.DBCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
