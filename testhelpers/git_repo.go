package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir  string
	repo *git.Repository
}

// NewGitRepo initializes a new Git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	return &GitRepo{Dir: dir, repo: repo}, nil
}

// WriteFile writes a file relative to the repository root without staging it.
func (r *GitRepo) WriteFile(rel string, content string) (string, error) {
	path := filepath.Join(r.Dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// CreateChangeAndCommit writes a file, stages it and commits it.
func (r *GitRepo) CreateChangeAndCommit(rel string, content string, message string) error {
	if _, err := r.WriteFile(rel, content); err != nil {
		return err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
		return fmt.Errorf("failed to add %s: %w", rel, err)
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "stashit test",
			Email: "test@stashit.dev",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
