// Package testhelpers provides testing utilities for stashit,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectFileContent asserts that path exists and holds content
func ExpectFileContent(t *testing.T, path string, content string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read %s", path)
	require.Equal(t, content, string(data), "Unexpected content in %s", path)
}

// ExpectStashDirs asserts the number of timestamp-named directories in root.
// A missing root counts as zero.
func ExpectStashDirs(t *testing.T, root string, expected int) {
	t.Helper()

	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		require.Equal(t, 0, expected, "Archive root %s does not exist", root)
		return
	}
	require.NoError(t, err)

	count := 0
	for _, entry := range entries {
		if _, err := strconv.ParseInt(entry.Name(), 10, 64); err == nil && entry.IsDir() {
			count++
		}
	}
	require.Equal(t, expected, count, "Unexpected number of stashes in %s", root)
}
