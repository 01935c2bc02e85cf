package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/utils"
)

// NewRootCmd creates the root cobra command. Running it with file operands
// stashes those files.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		keep    bool
		changed bool
	)

	rootCmd := &cobra.Command{
		Use:   "stashit [flags] <paths...>",
		Short: "Stash files away and pop them back later",
		Long: `Stashit copies files into a timestamped archive and restores them on demand.

Each stash mirrors the absolute paths of its files, so popping it puts every
file back where it came from. Stashes are numbered from 0, newest first.

Paths may be glob patterns (including **), and "-" reads newline separated
paths from stdin. Use "--" before a file that is named like a command.

Examples:
  stashit notes.txt build/*.log
  stashit --keep config/**/*.yaml
  stashit --changed
  git ls-files -m | stashit -`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !changed {
				return cmd.Help()
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.StashAction(ctx, actions.StashOptions{
					Operands:  args,
					Keep:      keep,
					Changed:   changed,
					ReadStdin: utils.ReadFromStdin,
				})
			})
		},
	}

	rootCmd.Flags().BoolVarP(&keep, "keep", "k", false, "Keep the original files after stashing them")
	rootCmd.Flags().BoolVar(&changed, "changed", false, "Also stash every modified or untracked file of the current git worktree")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newPopCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
