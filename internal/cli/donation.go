package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var donationCmd = &cobra.Command{
	Use:   "donation",
	Short: "Record donations",
}

var donationMakeCmd = &cobra.Command{
	Use:   "make [email]",
	Short: "Record a donation from an existing entity to a campaign",
	Long: `Record a donation. Amounts must be positive.

Examples:
  outreach donation make ada@example.org --issue Parks --location Burnaby \
    --start 2024-05-10 --date 2024-05-12 --amount 300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		amount, _ := cmd.Flags().GetString("amount")

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Donate(
			context.Background(), args[0], campaignKeyFlags(cmd), date, amount,
		)
	},
}

func init() {
	addCampaignKeyFlags(donationMakeCmd)
	donationMakeCmd.Flags().String("date", "", "Donation date, YYYY-MM-DD (required)")
	donationMakeCmd.Flags().String("amount", "", "Donation amount (required)")
	donationMakeCmd.MarkFlagRequired("date")
	donationMakeCmd.MarkFlagRequired("amount")

	donationCmd.AddCommand(donationMakeCmd)
}

// DonationCmd returns the donation command
func DonationCmd() *cobra.Command {
	return donationCmd
}
