package stash_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	stashiterrors "stashit.dev/stashit/internal/errors"
	"stashit.dev/stashit/internal/stash"
	"stashit.dev/stashit/testhelpers"
)

// fixedClock returns a clock frozen at the given Unix second
func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

// rootRelative strips the leading separator the way stash entries store paths
func rootRelative(path string) string {
	return strings.TrimPrefix(path, string(filepath.Separator))
}

func TestStash(t *testing.T) {
	t.Run("keep leaves the original and lists the stash", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		eng := stash.NewEngine(scene.Root)

		before := time.Now().Unix()
		count, err := eng.Stash([]string{file}, stash.StashOptions{Keep: true})
		after := time.Now().Unix()
		require.NoError(t, err)
		require.Equal(t, 1, count)

		require.FileExists(t, file)

		records := eng.List(nil)
		require.Len(t, records, 1)
		require.GreaterOrEqual(t, records[0].Timestamp, before)
		require.LessOrEqual(t, records[0].Timestamp, after)
		require.Equal(t, []string{"foo.txt"}, records[0].Files)
	})

	t.Run("deletes the original by default", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		eng := stash.NewEngine(scene.Root)

		count, err := eng.Stash([]string{file}, stash.StashOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.NoFileExists(t, file)
	})

	t.Run("mirrors the absolute path under the timestamp directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "docs/a/b.txt", "mirrored")
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		_, err := eng.Stash([]string{file}, stash.StashOptions{})
		require.NoError(t, err)

		testhelpers.ExpectFileContent(t, scene.StashedPath("1700000000", rootRelative(file)), "mirrored")
	})

	t.Run("resolves relative paths against the working directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "rel/foo.txt", "relative")
		t.Chdir(scene.Dir)
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		count, err := eng.Stash([]string{filepath.Join("rel", "foo.txt")}, stash.StashOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.NoFileExists(t, file)

		wd, err := os.Getwd()
		require.NoError(t, err)
		stored := scene.StashedPath("1700000000", rootRelative(filepath.Join(wd, "rel", "foo.txt")))
		testhelpers.ExpectFileContent(t, stored, "relative")
	})

	t.Run("missing file aborts without leaving an entry", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		missing := filepath.Join(scene.Dir, "missing.txt")
		eng := stash.NewEngine(scene.Root)

		_, err := eng.Stash([]string{file, missing}, stash.StashOptions{})
		require.ErrorIs(t, err, stashiterrors.ErrInvalidInput)
		require.ErrorContains(t, err, "doesn't exist")

		require.FileExists(t, file)
		require.Empty(t, eng.List(nil))
		testhelpers.ExpectStashDirs(t, scene.Root, 0)
	})

	t.Run("directories are rejected", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		eng := stash.NewEngine(scene.Root)

		_, err := eng.Stash([]string{scene.Dir}, stash.StashOptions{})
		require.ErrorIs(t, err, stashiterrors.ErrInvalidInput)
		require.ErrorContains(t, err, "not a regular file")
	})

	t.Run("no files is invalid input", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		eng := stash.NewEngine(scene.Root)

		_, err := eng.Stash(nil, stash.StashOptions{})
		require.ErrorIs(t, err, stashiterrors.ErrInvalidInput)
	})

	t.Run("files inside the archive are rejected", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		_, err := eng.Stash([]string{file}, stash.StashOptions{Keep: true})
		require.NoError(t, err)

		stored := scene.StashedPath("1700000000", rootRelative(file))
		_, err = eng.Stash([]string{stored}, stash.StashOptions{})
		require.ErrorIs(t, err, stashiterrors.ErrInvalidInput)
		require.FileExists(t, stored)
	})

	t.Run("duplicate inputs are counted but stored once", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		eng := stash.NewEngine(scene.Root)

		count, err := eng.Stash([]string{file, file}, stash.StashOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.NoFileExists(t, file)

		record, err := eng.Show(0)
		require.NoError(t, err)
		require.Equal(t, []string{file}, record.Files)
	})

	t.Run("same second collision uses the next free second", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		first := scene.WriteFile(t, "first.txt", "1")
		second := scene.WriteFile(t, "second.txt", "2")
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		_, err := eng.Stash([]string{first}, stash.StashOptions{})
		require.NoError(t, err)
		_, err = eng.Stash([]string{second}, stash.StashOptions{})
		require.NoError(t, err)

		records := eng.List(nil)
		require.Len(t, records, 2)
		require.Equal(t, int64(1700000001), records[0].Timestamp)
		require.Equal(t, []string{"second.txt"}, records[0].Files)
		require.Equal(t, int64(1700000000), records[1].Timestamp)
		require.Equal(t, []string{"first.txt"}, records[1].Files)
	})

	t.Run("preserves permission bits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "run.sh", "#!/bin/sh\n")
		require.NoError(t, os.Chmod(file, 0750))
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		_, err := eng.Stash([]string{file}, stash.StashOptions{Keep: true})
		require.NoError(t, err)

		info, err := os.Stat(scene.StashedPath("1700000000", rootRelative(file)))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0750), info.Mode().Perm())
	})

	t.Run("leaves no staging directory behind", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		file := scene.WriteFile(t, "foo.txt", "hello")
		eng := stash.NewEngine(scene.Root, stash.WithClock(fixedClock(1700000000)))

		_, err := eng.Stash([]string{file}, stash.StashOptions{})
		require.NoError(t, err)

		entries, err := os.ReadDir(scene.Root)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, strconv.Itoa(1700000000), entries[0].Name())
	})

	t.Run("unreadable source rolls the entry back", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root can read files regardless of permissions")
		}
		scene := testhelpers.NewScene(t, nil)
		readable := scene.WriteFile(t, "a.txt", "a")
		unreadable := scene.WriteFile(t, "b.txt", "b")
		require.NoError(t, os.Chmod(unreadable, 0))
		t.Cleanup(func() { _ = os.Chmod(unreadable, 0600) })
		eng := stash.NewEngine(scene.Root)

		_, err := eng.Stash([]string{readable, unreadable}, stash.StashOptions{})
		require.ErrorIs(t, err, stashiterrors.ErrIOFailure)

		require.FileExists(t, readable)
		entries, err := os.ReadDir(scene.Root)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
