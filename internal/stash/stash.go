package stash

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/segmentio/ksuid"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

const (
	// stagingPrefix names the directory a new stash is assembled in before it
	// is renamed into place. It never parses as a timestamp.
	stagingPrefix = ".staging-"
	// maxSlotAttempts bounds the search for a free timestamp on collision
	maxSlotAttempts = 60
)

// source is a validated stash input
type source struct {
	Input        string // As given by the caller
	Abs          string // Absolute, cleaned path
	RootRelative string // Abs without the leading separator
}

func (e *engineImpl) Stash(files []string, opts StashOptions) (int, error) {
	if len(files) == 0 {
		return 0, stashiterrors.NewInvalidInputError("", "no files to stash")
	}

	timestamp := e.now().Unix()

	sources, err := e.resolveSources(files)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(e.root, 0750); err != nil {
		return 0, stashiterrors.NewIOError("create archive root", e.root, err)
	}

	staging := filepath.Join(e.root, stagingPrefix+ksuid.New().String())
	if err := os.Mkdir(staging, 0750); err != nil {
		return 0, stashiterrors.NewIOError("create stash directory", staging, err)
	}
	e.logger.Debug("Staging stash in %s", staging)

	for _, src := range sources {
		dst := filepath.Join(staging, src.RootRelative)
		written, err := copyFile(src.Abs, dst)
		if err != nil {
			e.discardStaging(staging)
			return 0, stashiterrors.NewIOError("copy", src.Input, err)
		}
		e.logger.Debug("File %s copied, total bytes: %d", src.Abs, written)
	}

	name, err := e.commitStaging(staging, timestamp)
	if err != nil {
		e.discardStaging(staging)
		return 0, err
	}
	e.logger.Debug("Created stash %s with %d file(s)", name, len(sources))

	if !opts.Keep {
		// The entry is complete at this point; a failed removal is reported but
		// does not roll the stash back.
		for _, src := range sources {
			if err := os.Remove(src.Abs); err != nil {
				return 0, stashiterrors.NewIOError("remove", src.Input, err)
			}
			e.logger.Debug("File %s removed", src.Abs)
		}
	}

	return len(files), nil
}

// resolveSources turns the inputs into absolute paths and checks that each one
// is an existing regular file outside the archive root. Inputs naming the same
// file yield a single source.
func (e *engineImpl) resolveSources(files []string) ([]source, error) {
	seen := make(map[string]bool, len(files))
	sources := make([]source, 0, len(files))

	for _, file := range files {
		abs, err := absolutePath(file)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, stashiterrors.NewInvalidInputError(file, "doesn't exist")
			}
			return nil, stashiterrors.NewIOError("stat", file, err)
		}
		if !info.Mode().IsRegular() {
			return nil, stashiterrors.NewInvalidInputError(file, "is not a regular file")
		}
		if isWithin(e.root, abs) {
			return nil, stashiterrors.NewInvalidInputError(file, "is inside the stash archive")
		}

		rootRelative := strings.TrimPrefix(abs, string(filepath.Separator))
		if rootRelative == abs || rootRelative == "" {
			return nil, stashiterrors.NewInvalidInputError(file, "cannot be made relative to the filesystem root")
		}

		if seen[abs] {
			continue
		}
		seen[abs] = true

		sources = append(sources, source{
			Input:        file,
			Abs:          abs,
			RootRelative: rootRelative,
		})
	}

	return sources, nil
}

// commitStaging renames the staging directory to its timestamp name.
// When the name is taken by a stash created in the same second, the next
// free second is used.
func (e *engineImpl) commitStaging(staging string, timestamp int64) (string, error) {
	for attempt := 0; attempt < maxSlotAttempts; attempt++ {
		name := strconv.FormatInt(timestamp, 10)
		target := filepath.Join(e.root, name)

		if _, err := os.Lstat(target); err == nil {
			e.logger.Debug("Stash %s already exists, trying the next second", name)
			timestamp++
			continue
		} else if !os.IsNotExist(err) {
			return "", stashiterrors.NewIOError("check stash directory", target, err)
		}

		if err := os.Rename(staging, target); err != nil {
			if os.IsExist(err) {
				timestamp++
				continue
			}
			return "", stashiterrors.NewIOError("create stash directory", target, err)
		}
		return name, nil
	}

	return "", stashiterrors.NewIOError("create stash directory", e.root,
		fmt.Errorf("no free timestamp after %d attempts", maxSlotAttempts))
}

func (e *engineImpl) discardStaging(staging string) {
	if err := os.RemoveAll(staging); err != nil {
		e.logger.Warn("Failed to clean up %s: %v", staging, err)
	}
}

// absolutePath resolves a relative path against the working directory
func absolutePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", stashiterrors.NewIOError("get working directory", "", err)
	}
	return filepath.Join(wd, path), nil
}

// isWithin reports whether path is dir or below it
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
