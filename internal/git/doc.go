// Package git reads the state of the git worktree around the working directory.
//
// It is used by the --changed flag to find modified and untracked files.
// Everything goes through go-git; no git binary is required.
package git
