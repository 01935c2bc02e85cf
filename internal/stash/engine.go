package stash

import (
	"time"
)

// Engine is the interface to the stash archive.
// It is not safe for concurrent use across processes: two invocations working
// on the same archive root are not synchronized.
type Engine interface {
	// Root returns the archive root directory
	Root() string

	// Entries returns all stash entries, newest first
	Entries() []Entry

	// Stash copies files into a new stash entry and, unless opts.Keep is set,
	// deletes the originals. It returns len(files); inputs naming the same file
	// are counted each time but stored once.
	Stash(files []string, opts StashOptions) (int, error)

	// List returns records for the entries whose position matches one of
	// indexes, or for all entries when indexes is empty
	List(indexes []string) []Record

	// Show returns the full record of one entry, with original absolute paths
	Show(index int) (Record, error)

	// Pop restores the files of an entry to their original locations and
	// deletes the entry. It returns the number of files restored.
	Pop(index int) (int, error)

	// Remove deletes an entry without restoring it
	Remove(index int) error
}

// Option configures an engine
type Option func(*engineImpl)

// WithLogger sets the logger used for debug and warning output
func WithLogger(logger Logger) Option {
	return func(e *engineImpl) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the clock used to name new stash entries
func WithClock(now func() time.Time) Option {
	return func(e *engineImpl) {
		if now != nil {
			e.now = now
		}
	}
}

type engineImpl struct {
	root   string
	logger Logger
	now    func() time.Time
}

// NewEngine creates an engine bound to the given archive root.
// The root does not need to exist yet; it is created by the first stash.
func NewEngine(root string, opts ...Option) Engine {
	e := &engineImpl{
		root:   root,
		logger: noopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *engineImpl) Root() string {
	return e.root
}
