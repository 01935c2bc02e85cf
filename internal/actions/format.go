package actions

import (
	"fmt"
	"strconv"
	"strings"

	stashiterrors "stashit.dev/stashit/internal/errors"
	"stashit.dev/stashit/internal/stash"
	"stashit.dev/stashit/internal/tui"
)

// DateFormat is how stash creation times are printed, in local time
const DateFormat = "2006-01-02 15:04:05 -07:00"

// ParseIndex parses a stash position operand
func ParseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || index < 0 {
		return 0, stashiterrors.NewInvalidInputError(arg, "is not a valid stash index")
	}
	return index, nil
}

// FormatRecord renders a record as "[index]: <date> (<names>)"
func FormatRecord(record stash.Record) string {
	return fmt.Sprintf("[%s]: %s (%s)",
		tui.ColorGreenBold(strconv.Itoa(record.Index)),
		record.Time().Format(DateFormat),
		tui.ColorYellow(strings.Join(record.Files, ", ")),
	)
}
