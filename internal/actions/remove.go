package actions

import (
	"fmt"

	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/tui"
)

// RemoveOptions contains options for the remove command
type RemoveOptions struct {
	Index int
	Force bool // Skip the confirmation prompt
}

// RemoveAction deletes a stash without restoring it
func RemoveAction(ctx *runtime.Context, opts RemoveOptions) error {
	splog := ctx.Splog

	if !opts.Force && tui.IsInteractive() {
		record, err := ctx.Engine.Show(opts.Index)
		if err != nil {
			return err
		}

		confirmed, err := tui.PromptConfirm(
			fmt.Sprintf("Remove stash %d from %s with %d file(s)? This cannot be undone.",
				record.Index, record.Time().Format(DateFormat), len(record.Files)),
			false,
		)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !confirmed {
			splog.Info("Remove canceled.")
			return nil
		}
	}

	if err := ctx.Engine.Remove(opts.Index); err != nil {
		return err
	}

	splog.Info("stash number %s removed!", tui.ColorGreenBold(fmt.Sprint(opts.Index)))
	return nil
}
