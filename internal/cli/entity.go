package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/wire"
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Inspect entities and assign roles",
}

var entityShowCmd = &cobra.Command{
	Use:   "show [email]",
	Short: "Show an entity and the roles it holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.EntityAdapterWithOutput(cmd.OutOrStdout()).Show(context.Background(), args[0])
	},
}

var entityRoleCmd = &cobra.Command{
	Use:   "role [email] [member|employee|volunteer]",
	Short: "Add a role to an existing entity",
	Long: `Add a role to an existing entity. Roles are independent: an entity may
hold any combination of them. Volunteers need a --tier.

Examples:
  outreach entity role ada@example.org member
  outreach entity role ada@example.org volunteer --tier silver`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _ := cmd.Flags().GetString("tier")
		return wire.EntityAdapterWithOutput(cmd.OutOrStdout()).AssignRole(context.Background(), args[0], args[1], tier)
	},
}

func init() {
	entityRoleCmd.Flags().String("tier", "", "Volunteer tier")

	entityCmd.AddCommand(entityShowCmd)
	entityCmd.AddCommand(entityRoleCmd)
}

// EntityCmd returns the entity command
func EntityCmd() *cobra.Command {
	return entityCmd
}
