package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Record and annotate realized campaign involvement",
}

var historyAddCmd = &cobra.Command{
	Use:   "add [email]",
	Short: "Record an entity's involvement in a campaign",
	Long: `Record an entity's involvement in a campaign. Omit --to while the
involvement is ongoing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		note, _ := cmd.Flags().GetString("note")

		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).AddHistory(
			context.Background(), args[0], campaignKeyFlags(cmd), from, to, note,
		)
	},
}

var historyAnnotateCmd = &cobra.Command{
	Use:   "annotate [email] [text]",
	Short: "Set the annotation on an entity's involvement in a campaign",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ActivityAdapterWithOutput(cmd.OutOrStdout()).AnnotateHistory(
			context.Background(), args[0], campaignKeyFlags(cmd), args[1],
		)
	},
}

func init() {
	// history add flags
	addCampaignKeyFlags(historyAddCmd)
	historyAddCmd.Flags().String("from", "", "Involvement start date, YYYY-MM-DD (required)")
	historyAddCmd.Flags().String("to", "", "Involvement end date, YYYY-MM-DD")
	historyAddCmd.Flags().String("note", "", "Annotation")
	historyAddCmd.MarkFlagRequired("from")

	addCampaignKeyFlags(historyAnnotateCmd)

	historyCmd.AddCommand(historyAddCmd)
	historyCmd.AddCommand(historyAnnotateCmd)
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return historyCmd
}
