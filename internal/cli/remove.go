package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
)

// newRemoveCmd creates the remove command
func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm", "drop"},
		Short:   "Delete a stash without restoring it",
		Long: `Delete a stash without restoring its files.

On a terminal you are asked to confirm unless --yes is given.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompleteStashIndexes,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := actions.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RemoveAction(ctx, actions.RemoveOptions{
					Index: index,
					Force: force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip confirmation prompt")

	cmd.SetFlagErrorFunc(helpers.IndexFlagError)

	return cmd
}
