package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Read-only reports",
	Long:  "Reports recompute from the store on every run; nothing is cached.",
}

var reportAccountingCmd = &cobra.Command{
	Use:   "accounting",
	Short: "Budget coverage per campaign",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapterWithOutput(cmd.OutOrStdout()).Accounting(context.Background())
	},
}

var reportEngagementCmd = &cobra.Command{
	Use:   "engagement",
	Short: "Engagement score per entity (10 per donation, 20 per active involvement)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapterWithOutput(cmd.OutOrStdout()).Engagement(context.Background())
	},
}

var reportDashboardCmd = &cobra.Command{
	Use:   "dashboard [email]",
	Short: "One entity's donations, volunteering history, and scheduled engagements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapterWithOutput(cmd.OutOrStdout()).Dashboard(context.Background(), args[0])
	},
}

func init() {
	reportCmd.AddCommand(reportAccountingCmd)
	reportCmd.AddCommand(reportEngagementCmd)
	reportCmd.AddCommand(reportDashboardCmd)
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	return reportCmd
}
