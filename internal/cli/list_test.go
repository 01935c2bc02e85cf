package cli_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/testhelpers"
)

var listLine = regexp.MustCompile(`^\[(\d+)\]: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} [+-]\d{2}:\d{2} \((.*)\)$`)

func TestListCommand(t *testing.T) {
	t.Parallel()
	binaryPath := getStashitBinary(t)

	t.Run("lists stashes newest first", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		for i := 0; i < 3; i++ {
			name := fmt.Sprintf("file%d.txt", i)
			scene.WriteFile(t, name, name)
			output, err := scene.Command(binaryPath, name).CombinedOutput()
			require.NoError(t, err, "stash failed: %s", string(output))
		}

		output, err := scene.Command(binaryPath, "list").CombinedOutput()
		require.NoError(t, err, "list failed: %s", string(output))

		lines := strings.Split(strings.TrimSpace(string(output)), "\n")
		require.Len(t, lines, 3)
		for i, line := range lines {
			match := listLine.FindStringSubmatch(line)
			require.NotNil(t, match, "unexpected list line %q", line)
			require.Equal(t, fmt.Sprint(i), match[1])
			require.Equal(t, fmt.Sprintf("file%d.txt", 2-i), match[2])
		}
	})

	t.Run("filters by index and keeps real positions", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		for i := 0; i < 2; i++ {
			name := fmt.Sprintf("file%d.txt", i)
			scene.WriteFile(t, name, name)
			output, err := scene.Command(binaryPath, name).CombinedOutput()
			require.NoError(t, err, "stash failed: %s", string(output))
		}

		output, err := scene.Command(binaryPath, "ls", "1", "9").CombinedOutput()
		require.NoError(t, err, "list failed: %s", string(output))

		lines := strings.Split(strings.TrimSpace(string(output)), "\n")
		require.Len(t, lines, 1)
		match := listLine.FindStringSubmatch(lines[0])
		require.NotNil(t, match)
		require.Equal(t, "1", match[1])
		require.Equal(t, "file0.txt", match[2])
	})

	t.Run("shows at most four names", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		args := []string{}
		for i := 0; i < 6; i++ {
			name := fmt.Sprintf("d%d/f%d.txt", i, i)
			scene.WriteFile(t, name, "x")
			args = append(args, name)
		}
		output, err := scene.Command(binaryPath, args...).CombinedOutput()
		require.NoError(t, err, "stash failed: %s", string(output))

		output, err = scene.Command(binaryPath, "list").CombinedOutput()
		require.NoError(t, err, "list failed: %s", string(output))
		match := listLine.FindStringSubmatch(strings.TrimSpace(string(output)))
		require.NotNil(t, match)
		require.Len(t, strings.Split(match[2], ", "), 4)
	})

	t.Run("empty archive prints nothing", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		output, err := scene.Command(binaryPath, "list").CombinedOutput()
		require.NoError(t, err)
		require.Empty(t, strings.TrimSpace(string(output)))
	})
}

func TestShowCommand(t *testing.T) {
	t.Parallel()
	binaryPath := getStashitBinary(t)
	scene := testhelpers.NewScene(t, nil)
	a := scene.WriteFile(t, "a.txt", "a")
	b := scene.WriteFile(t, "nested/b.txt", "b")

	output, err := scene.Command(binaryPath, a, b).CombinedOutput()
	require.NoError(t, err, "stash failed: %s", string(output))

	output, err = scene.Command(binaryPath, "show", "0").CombinedOutput()
	require.NoError(t, err, "show failed: %s", string(output))
	require.Contains(t, string(output), "  "+a)
	require.Contains(t, string(output), "  "+b)

	output, err = scene.Command(binaryPath, "show", "4").CombinedOutput()
	require.Equal(t, 3, exitCode(t, err))
	require.Contains(t, string(output), "stash 4 not found")
}
