package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// openRepository opens the repository containing dir, searching parent directories
func openRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return repo, nil
}
