package stash

import (
	"path/filepath"
	"slices"
	"strconv"
)

func (e *engineImpl) List(indexes []string) []Record {
	entries := e.Entries()
	records := make([]Record, 0, len(entries))
	if len(entries) == 0 {
		e.logger.Debug("No stashes found")
		return records
	}

	for _, entry := range entries {
		if len(indexes) > 0 && !slices.Contains(indexes, strconv.Itoa(entry.Index)) {
			continue
		}
		records = append(records, Record{
			Index:     entry.Index,
			Timestamp: entry.Timestamp,
			Files:     e.fileNames(entry, ListFileLimit),
		})
	}

	return records
}

func (e *engineImpl) Show(index int) (Record, error) {
	entry, err := e.resolve(index)
	if err != nil {
		return Record{}, err
	}

	files := []string{}
	for file := range walkFiles(entry.Dir, e.logger) {
		files = append(files, file.OriginalPath())
	}

	return Record{
		Index:     entry.Index,
		Timestamp: entry.Timestamp,
		Files:     files,
	}, nil
}

// fileNames returns the base names of the files in an entry, stopping after
// limit names. This truncates the view only, never the entry.
func (e *engineImpl) fileNames(entry Entry, limit int) []string {
	names := []string{}
	for file := range walkFiles(entry.Dir, e.logger) {
		names = append(names, filepath.Base(file.Path))
		if limit > 0 && len(names) >= limit {
			break
		}
	}
	return names
}
