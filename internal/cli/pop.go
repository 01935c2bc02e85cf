package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
)

// newPopCmd creates the pop command
func newPopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop [index]",
		Short: "Restore the files of a stash and delete it",
		Long: `Restore the files of a stash to their original locations and delete the stash.

Existing files are overwritten. If some files cannot be restored the others are
still put back and the stash is kept.

Without an index, a stash is picked interactively on a terminal; otherwise the
newest stash is popped.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompleteStashIndexes,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.PopOptions{}
			if len(args) == 1 {
				index, err := actions.ParseIndex(args[0])
				if err != nil {
					return err
				}
				opts.Index = index
				opts.HasIndex = true
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PopAction(ctx, opts)
			})
		},
	}

	cmd.SetFlagErrorFunc(helpers.IndexFlagError)

	return cmd
}
