package stash

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// storedFile is a regular file inside a stash entry
type storedFile struct {
	Path string // Absolute path inside the entry
	Rel  string // Path relative to the entry directory
}

// OriginalPath returns the absolute path the file was stashed from
func (f storedFile) OriginalPath() string {
	return string(filepath.Separator) + f.Rel
}

// walkFiles lazily yields the regular files below dir in lexical order.
// Consumers stop the walk by breaking out of the range loop, so the same
// walker serves the truncated listing and the full restore.
// Unreadable paths are logged and skipped.
func walkFiles(dir string, logger Logger) iter.Seq[storedFile] {
	return func(yield func(storedFile) bool) {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("Skipping %s: %v", path, err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				logger.Debug("Skipping %s: %v", path, err)
				return nil
			}

			if !yield(storedFile{Path: path, Rel: rel}) {
				return filepath.SkipAll // iterator wants to stop
			}
			return nil
		})
	}
}
