package stash

import (
	"os"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

func (e *engineImpl) Remove(index int) error {
	entry, err := e.resolve(index)
	if err != nil {
		return err
	}
	return e.removeEntry(entry)
}

func (e *engineImpl) removeEntry(entry Entry) error {
	e.logger.Debug("Removing path: %s", entry.Dir)
	if err := os.RemoveAll(entry.Dir); err != nil {
		return stashiterrors.NewIOError("remove stash", entry.Dir, err)
	}
	return nil
}
