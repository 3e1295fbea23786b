package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage campaigns",
	Long:  "Create, annotate, show, and list campaigns. A campaign is identified by issue, location, and start date together.",
}

var campaignCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new campaign",
	Long: `Create a new campaign.

Examples:
  outreach campaign create --issue "Clean Water" --location Vancouver \
    --start 2024-03-01 --duration 90 --phase active --budget 5000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		phase, _ := cmd.Flags().GetString("phase")
		budget, _ := cmd.Flags().GetString("budget")
		push, _ := cmd.Flags().GetString("website-push")

		return wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).Create(
			context.Background(), campaignKeyFlags(cmd), duration, phase, budget, push,
		)
	},
}

var campaignAnnotateCmd = &cobra.Command{
	Use:   "annotate [text]",
	Short: "Set a campaign's annotation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).Annotate(context.Background(), campaignKeyFlags(cmd), args[0])
	},
}

var campaignShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show campaign details",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).Show(context.Background(), campaignKeyFlags(cmd))
	},
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all campaigns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.CampaignAdapterWithOutput(cmd.OutOrStdout()).List(context.Background())
	},
}

func init() {
	// campaign create flags
	addCampaignKeyFlags(campaignCreateCmd)
	campaignCreateCmd.Flags().Int("duration", 0, "Duration in days")
	campaignCreateCmd.Flags().String("phase", "", "Campaign phase (required)")
	campaignCreateCmd.Flags().String("budget", "0", "Budget amount, e.g. 5000 or 5000.00")
	campaignCreateCmd.Flags().String("website-push", "", "Website push date, YYYY-MM-DD")
	campaignCreateCmd.MarkFlagRequired("phase")

	addCampaignKeyFlags(campaignAnnotateCmd)
	addCampaignKeyFlags(campaignShowCmd)

	campaignCmd.AddCommand(campaignCreateCmd)
	campaignCmd.AddCommand(campaignAnnotateCmd)
	campaignCmd.AddCommand(campaignShowCmd)
	campaignCmd.AddCommand(campaignListCmd)
}

// CampaignCmd returns the campaign command
func CampaignCmd() *cobra.Command {
	return campaignCmd
}
