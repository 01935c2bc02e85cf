package git

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	gogit "github.com/go-git/go-git/v5"
)

// ChangedFiles returns the absolute paths of every modified, added or untracked
// file in the worktree containing dir. Deleted files are skipped since there is
// nothing left on disk to stash.
func ChangedFiles(dir string) ([]string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	root := worktree.Filesystem.Root()
	files := make([]string, 0, len(status))
	for rel, fileStatus := range status {
		if !isChanged(fileStatus) {
			continue
		}

		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}

	slices.Sort(files)
	return files, nil
}

func isChanged(fs *gogit.FileStatus) bool {
	if fs.Worktree == gogit.Deleted {
		return false
	}
	if fs.Worktree == gogit.Unmodified && fs.Staging == gogit.Unmodified {
		return false
	}
	return fs.Staging != gogit.Deleted
}
