package stash

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

type scanState int

const (
	scanEmpty scanState = iota
	scanFound
)

// entryScan is the result of reading the archive root.
// A missing or unreadable root is scanEmpty, carrying the read error so it can
// be logged, while callers outside the package only ever see "no entries".
type entryScan struct {
	state   scanState
	entries []Entry
	err     error
}

// scanEntries reads the archive root and returns the valid entries, newest first
func (e *engineImpl) scanEntries() entryScan {
	dirEntries, err := os.ReadDir(e.root)
	if err != nil {
		return entryScan{state: scanEmpty, err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}

		timestamp, err := strconv.ParseInt(dirEntry.Name(), 10, 64)
		if err != nil {
			// Not a stash (staging directories end up here too)
			e.logger.Debug("Ignoring %s: not a valid timestamp", dirEntry.Name())
			continue
		}

		entries = append(entries, Entry{
			Timestamp: timestamp,
			Name:      dirEntry.Name(),
			Dir:       filepath.Join(e.root, dirEntry.Name()),
		})
	}

	if len(entries) == 0 {
		return entryScan{state: scanEmpty}
	}

	// Sort by timestamp (newest first)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp != entries[j].Timestamp {
			return entries[i].Timestamp > entries[j].Timestamp
		}
		// Tie-breaker: "01" and "1" parse to the same timestamp
		return entries[i].Name > entries[j].Name
	})

	for i := range entries {
		entries[i].Index = i
	}

	return entryScan{state: scanFound, entries: entries}
}

func (e *engineImpl) Entries() []Entry {
	scan := e.scanEntries()
	if scan.state == scanEmpty {
		if scan.err != nil {
			e.logger.Debug("No stashes in %s: %v", e.root, scan.err)
		}
		return []Entry{}
	}
	return scan.entries
}

// resolve returns the entry at the given position
func (e *engineImpl) resolve(index int) (Entry, error) {
	if index < 0 {
		return Entry{}, stashiterrors.NewStashNotFoundError(index)
	}
	for _, entry := range e.Entries() {
		if entry.Index == index {
			return entry, nil
		}
	}
	return Entry{}, stashiterrors.NewStashNotFoundError(index)
}
