// Package errors provides sentinel errors and custom error types for the stashit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrStashNotFound indicates that a position index does not resolve to a stash entry
	ErrStashNotFound = errors.New("stash not found")

	// ErrInvalidInput indicates that a path given to stash cannot be stashed
	ErrInvalidInput = errors.New("invalid input")

	// ErrIOFailure indicates that a copy, directory creation or removal failed
	ErrIOFailure = errors.New("i/o failure")
)

// StashNotFoundError represents an error when no stash exists at an index
type StashNotFoundError struct {
	Index int
}

func (e *StashNotFoundError) Error() string {
	return fmt.Sprintf("stash %d not found", e.Index)
}

// Is returns true if the target error is ErrStashNotFound
func (e *StashNotFoundError) Is(target error) bool {
	return target == ErrStashNotFound
}

// NewStashNotFoundError creates a new StashNotFoundError
func NewStashNotFoundError(index int) *StashNotFoundError {
	return &StashNotFoundError{Index: index}
}

// InvalidInputError represents a path that was rejected before anything was copied
type InvalidInputError struct {
	Path   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(path string, reason string) *InvalidInputError {
	return &InvalidInputError{
		Path:   path,
		Reason: reason,
	}
}

// IOError represents a failed filesystem operation
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	msg := fmt.Sprintf("failed to %s", e.Op)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrIOFailure
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(op string, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// PartialRestoreError is returned by pop when some files could not be written back.
// The stash entry is kept so the failed files can be restored later.
type PartialRestoreError struct {
	Restored int
	Failed   []string
}

func (e *PartialRestoreError) Error() string {
	return fmt.Sprintf("restored %d file(s), failed to restore %d: %s; stash kept",
		e.Restored, len(e.Failed), strings.Join(e.Failed, ", "))
}

// Is returns true if the target error is ErrIOFailure
func (e *PartialRestoreError) Is(target error) bool {
	return target == ErrIOFailure
}

// NewPartialRestoreError creates a new PartialRestoreError
func NewPartialRestoreError(restored int, failed []string) *PartialRestoreError {
	return &PartialRestoreError{
		Restored: restored,
		Failed:   failed,
	}
}
