package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <index>",
		Short:             "Show every file stored in a stash",
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		ValidArgsFunction: helpers.CompleteStashIndexes,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := actions.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ShowAction(ctx, actions.ShowOptions{Index: index})
			})
		},
	}

	cmd.SetFlagErrorFunc(helpers.IndexFlagError)

	return cmd
}
