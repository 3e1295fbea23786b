package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/outreach/internal/adapters/cli"
)

// addCampaignKeyFlags registers the three required flags that identify a campaign.
func addCampaignKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String("issue", "", "Campaign issue (required)")
	cmd.Flags().String("location", "", "Campaign location (required)")
	cmd.Flags().String("start", "", "Campaign start date, YYYY-MM-DD (required)")
	cmd.MarkFlagRequired("issue")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("start")
}

// campaignKeyFlags reads the flags registered by addCampaignKeyFlags.
func campaignKeyFlags(cmd *cobra.Command) cliadapter.KeyArgs {
	issue, _ := cmd.Flags().GetString("issue")
	location, _ := cmd.Flags().GetString("location")
	start, _ := cmd.Flags().GetString("start")
	return cliadapter.KeyArgs{Issue: issue, Location: location, StartDate: start}
}
