package actions

import (
	"errors"
	"fmt"
	"strconv"

	stashiterrors "stashit.dev/stashit/internal/errors"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/tui"
)

// PopOptions contains options for the pop command
type PopOptions struct {
	Index    int
	HasIndex bool // When false the stash is picked interactively, or the newest one is used
}

// PopAction restores the files of a stash and deletes it
func PopAction(ctx *runtime.Context, opts PopOptions) error {
	splog := ctx.Splog

	index := opts.Index
	if !opts.HasIndex {
		selected, err := pickStash(ctx, "Select a stash to pop:")
		if err != nil {
			return err
		}
		index = selected
	}

	count, err := ctx.Engine.Pop(index)
	if err != nil {
		var partial *stashiterrors.PartialRestoreError
		if errors.As(err, &partial) {
			splog.Info("%s file(s) restored", tui.ColorGreenBold(strconv.Itoa(count)))
		}
		return err
	}

	splog.Info("%s file(s) restored", tui.ColorGreenBold(strconv.Itoa(count)))
	return nil
}

// pickStash lets the user choose a stash on a terminal. Without one, or with
// a single stash, the newest stash is used.
func pickStash(ctx *runtime.Context, title string) (int, error) {
	records := ctx.Engine.List(nil)
	if len(records) == 0 {
		return 0, stashiterrors.NewStashNotFoundError(0)
	}
	if len(records) == 1 || !tui.IsInteractive() {
		return 0, nil
	}

	options := make([]tui.SelectOption, len(records))
	for i, record := range records {
		options[i] = tui.SelectOption{
			Label: FormatRecord(record),
			Value: strconv.Itoa(record.Index),
		}
	}

	selected, err := tui.PromptSelect(title, options, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to select stash: %w", err)
	}
	return ParseIndex(selected)
}
