package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var volunteerCmd = &cobra.Command{
	Use:   "volunteer",
	Short: "Register and schedule volunteers",
}

var volunteerAddCmd = &cobra.Command{
	Use:   "add [email] [name]",
	Short: "Register a new volunteer with a first scheduled engagement",
	Long: `Register a new entity, record it as a volunteer of the given tier, and
schedule it for a campaign. All three are written together or not at all.

Examples:
  outreach volunteer add alan@example.org "Alan Turing" --tier bronze \
    --issue Parks --location Burnaby --start 2024-05-10 --date 2024-05-18`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _ := cmd.Flags().GetString("tier")
		date, _ := cmd.Flags().GetString("date")

		return wire.EntityAdapterWithOutput(cmd.OutOrStdout()).AddVolunteer(
			context.Background(), args[0], args[1], tier, campaignKeyFlags(cmd), date,
		)
	},
}

var volunteerScheduleCmd = &cobra.Command{
	Use:   "schedule [email]",
	Short: "Schedule an existing entity for a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).Schedule(
			context.Background(), args[0], campaignKeyFlags(cmd), date,
		)
	},
}

func init() {
	// volunteer add flags
	volunteerAddCmd.Flags().String("tier", "", "Volunteer tier (required)")
	volunteerAddCmd.Flags().String("date", "", "Scheduled date, YYYY-MM-DD (required)")
	volunteerAddCmd.MarkFlagRequired("tier")
	volunteerAddCmd.MarkFlagRequired("date")
	addCampaignKeyFlags(volunteerAddCmd)

	// volunteer schedule flags
	volunteerScheduleCmd.Flags().String("date", "", "Scheduled date, YYYY-MM-DD (required)")
	volunteerScheduleCmd.MarkFlagRequired("date")
	addCampaignKeyFlags(volunteerScheduleCmd)

	volunteerCmd.AddCommand(volunteerAddCmd)
	volunteerCmd.AddCommand(volunteerScheduleCmd)
}

// VolunteerCmd returns the volunteer command
func VolunteerCmd() *cobra.Command {
	return volunteerCmd
}
