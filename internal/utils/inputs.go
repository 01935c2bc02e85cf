package utils

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

// StdinOperand is the operand that makes the paths be read from standard input
const StdinOperand = "-"

// HasGlobMeta reports whether the operand should be treated as a glob pattern
func HasGlobMeta(operand string) bool {
	return strings.ContainsAny(operand, "*?[{")
}

// ExpandInputs turns command line operands into file paths.
// An operand naming an existing path is taken literally even when it contains
// glob characters. Other glob operands are expanded to the regular files they
// match, "-" is replaced by the lines read with readStdin, and anything else is
// passed through untouched.
func ExpandInputs(operands []string, readStdin func() (string, error)) ([]string, error) {
	var paths []string
	stdinRead := false

	for _, operand := range operands {
		switch {
		case operand == StdinOperand:
			if stdinRead || readStdin == nil {
				continue
			}
			stdinRead = true
			content, err := readStdin()
			if err != nil {
				return nil, fmt.Errorf("failed to read paths from stdin: %w", err)
			}
			paths = append(paths, SplitLines(content)...)

		case !HasGlobMeta(operand) || exists(operand):
			paths = append(paths, operand)

		default:
			matches, err := doublestar.FilepathGlob(operand, doublestar.WithFilesOnly())
			if err != nil {
				return nil, stashiterrors.NewInvalidInputError(operand, "is not a valid pattern")
			}
			if len(matches) == 0 {
				return nil, stashiterrors.NewInvalidInputError(operand, "matched no files")
			}
			slices.Sort(matches)
			paths = append(paths, matches...)
		}
	}

	return paths, nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
