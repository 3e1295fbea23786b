package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var donorCmd = &cobra.Command{
	Use:   "donor",
	Short: "Register donors",
}

var donorRegisterCmd = &cobra.Command{
	Use:   "register [email] [name]",
	Short: "Register a new entity as a donor",
	Long: `Register a new entity identified by email.

Examples:
  outreach donor register ada@example.org "Ada Lovelace"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.EntityAdapterWithOutput(cmd.OutOrStdout()).RegisterDonor(context.Background(), args[0], args[1])
	},
}

func init() {
	donorCmd.AddCommand(donorRegisterCmd)
}

// DonorCmd returns the donor command
func DonorCmd() *cobra.Command {
	return donorCmd
}
