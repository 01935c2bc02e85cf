package cli

import (
	"errors"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

// Process exit codes
const (
	ExitOK           = 0
	ExitFailure      = 1 // I/O failures and anything unclassified
	ExitInvalidInput = 2
	ExitNotFound     = 3
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, stashiterrors.ErrStashNotFound):
		return ExitNotFound
	case errors.Is(err, stashiterrors.ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
