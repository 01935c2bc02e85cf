package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [indexes...]",
		Aliases: []string{"ls"},
		Short:   "List stashes, newest first",
		Long: `List stashes, newest first.

Each line shows the stash number, when it was created and up to four of its
file names. Pass stash numbers to only show those stashes.`,
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompleteStashIndexes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ListAction(ctx, actions.ListOptions{Indexes: args})
			})
		},
	}

	cmd.SetFlagErrorFunc(helpers.IndexFlagError)

	return cmd
}
