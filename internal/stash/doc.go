// Package stash implements the stash lifecycle on top of a single archive root.
//
// A stash entry is a directory directly below the archive root whose name is a
// Unix timestamp in seconds. Inside it, every stashed file is stored under its
// absolute path with the leading separator removed, so /home/me/notes.txt
// stashed at 1700000000 lives at <root>/1700000000/home/me/notes.txt.
//
// Entries are addressed by position: 0 is the newest entry. Positions are
// recomputed from disk on every call and are never persisted.
package stash
