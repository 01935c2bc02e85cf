package actions

import (
	"stashit.dev/stashit/internal/runtime"
)

// ListOptions contains options for the list command
type ListOptions struct {
	Indexes []string // Positions to show; all when empty
}

// ListAction prints the matching stashes, newest first
func ListAction(ctx *runtime.Context, opts ListOptions) error {
	records := ctx.Engine.List(opts.Indexes)
	if len(records) == 0 {
		ctx.Splog.Debug("No stashes to list in %s", ctx.Engine.Root())
		return nil
	}

	for _, record := range records {
		ctx.Splog.Info("%s", FormatRecord(record))
	}
	return nil
}
