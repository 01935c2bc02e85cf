package actions

import (
	"strconv"

	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/tui"
)

// ShowOptions contains options for the show command
type ShowOptions struct {
	Index int
}

// ShowAction prints every original path stored in one stash
func ShowAction(ctx *runtime.Context, opts ShowOptions) error {
	record, err := ctx.Engine.Show(opts.Index)
	if err != nil {
		return err
	}

	ctx.Splog.Info("[%s]: %s", tui.ColorGreenBold(strconv.Itoa(record.Index)), record.Time().Format(DateFormat))
	for _, file := range record.Files {
		ctx.Splog.Info("  %s", file)
	}
	return nil
}
