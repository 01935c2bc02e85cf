package stash

import "time"

// ListFileLimit is the number of file names collected per record by List
const ListFileLimit = 4

// Entry is a stash directory found below the archive root
type Entry struct {
	Index     int    // Position among all entries, newest first
	Timestamp int64  // Unix seconds parsed from the directory name
	Name      string // Directory name
	Dir       string // Absolute path of the entry directory
}

// Record is the display view of a stash entry
type Record struct {
	Index     int
	Timestamp int64
	Files     []string
}

// Time returns the creation time of the stash in the local time zone
func (r Record) Time() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// StashOptions contains options for creating a stash
type StashOptions struct {
	Keep bool // Keep the original files instead of deleting them after the copy
}

// Logger is the logging surface the engine writes to.
// *tui.Splog satisfies it.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}
