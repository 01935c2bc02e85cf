package stash

import stashiterrors "stashit.dev/stashit/internal/errors"

// Pop restores every file of the entry, overwriting whatever exists at the
// destination. A file that cannot be restored is logged and skipped; in that
// case the entry is kept and a PartialRestoreError is returned along with the
// number of files that were restored.
func (e *engineImpl) Pop(index int) (int, error) {
	e.logger.Debug("Popping stash %d", index)

	entry, err := e.resolve(index)
	if err != nil {
		return 0, err
	}

	restored := 0
	var failed []string
	for file := range walkFiles(entry.Dir, e.logger) {
		dst := file.OriginalPath()
		if _, err := copyFile(file.Path, dst); err != nil {
			e.logger.Warn("Failed to restore %s: %v", dst, err)
			failed = append(failed, dst)
			continue
		}
		e.logger.Debug("Restored %s", dst)
		restored++
	}

	if len(failed) > 0 {
		return restored, stashiterrors.NewPartialRestoreError(restored, failed)
	}

	if err := e.removeEntry(entry); err != nil {
		return restored, err
	}

	return restored, nil
}
