package actions

import (
	"fmt"
	"os"

	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/stash"
	"stashit.dev/stashit/internal/tui"
	"stashit.dev/stashit/internal/utils"
)

// StashOptions contains options for the stash command
type StashOptions struct {
	Operands  []string                // Paths, glob patterns or "-"
	Keep      bool                    // Keep the original files
	Changed   bool                    // Add modified and untracked files of the current git worktree
	ReadStdin func() (string, error) // Source of paths for the "-" operand
}

// StashAction copies the given files into a new stash
func StashAction(ctx *runtime.Context, opts StashOptions) error {
	splog := ctx.Splog

	files, err := utils.ExpandInputs(opts.Operands, opts.ReadStdin)
	if err != nil {
		return err
	}

	if opts.Changed {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		changed, err := git.ChangedFiles(wd)
		if err != nil {
			return fmt.Errorf("failed to list changed files: %w", err)
		}
		splog.Debug("Found %d changed file(s) in the worktree", len(changed))
		files = append(files, changed...)
	}

	count, err := ctx.Engine.Stash(files, stash.StashOptions{Keep: opts.Keep})
	if err != nil {
		return err
	}

	splog.Info("%s file(s) stashed!", tui.ColorGreenBold(fmt.Sprint(count)))
	return nil
}
