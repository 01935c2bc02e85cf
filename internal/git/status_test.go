package git_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/testhelpers"
)

func newRepo(t *testing.T) *testhelpers.GitRepo {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	repo, err := testhelpers.NewGitRepo(dir)
	require.NoError(t, err)
	return repo
}

func TestChangedFiles(t *testing.T) {
	t.Run("clean worktree has no changed files", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateChangeAndCommit("README.md", "hello", "initial"))

		files, err := git.ChangedFiles(repo.Dir)
		require.NoError(t, err)
		require.Empty(t, files)
	})

	t.Run("returns modified and untracked files", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateChangeAndCommit("README.md", "hello", "initial"))
		require.NoError(t, repo.CreateChangeAndCommit("src/main.go", "package main", "add main"))

		_, err := repo.WriteFile("README.md", "edited")
		require.NoError(t, err)
		untracked, err := repo.WriteFile("notes/todo.txt", "scratch")
		require.NoError(t, err)

		files, err := git.ChangedFiles(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, []string{filepath.Join(repo.Dir, "README.md"), untracked}, files)
	})

	t.Run("skips deleted files", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateChangeAndCommit("gone.txt", "bye", "initial"))
		require.NoError(t, os.Remove(filepath.Join(repo.Dir, "gone.txt")))

		files, err := git.ChangedFiles(repo.Dir)
		require.NoError(t, err)
		require.Empty(t, files)
	})

	t.Run("works from a subdirectory", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.CreateChangeAndCommit("a/b/c.txt", "c", "initial"))
		untracked, err := repo.WriteFile("top.txt", "top")
		require.NoError(t, err)

		files, err := git.ChangedFiles(filepath.Join(repo.Dir, "a", "b"))
		require.NoError(t, err)
		require.Equal(t, []string{untracked}, files)
	})

	t.Run("outside a repository is an error", func(t *testing.T) {
		_, err := git.ChangedFiles(t.TempDir())
		require.ErrorContains(t, err, "not a git repository")
	})
}
