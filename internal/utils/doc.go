// Package utils provides helpers for turning command line operands into file paths.
//
// It covers:
//   - Reading newline separated paths from standard input
//   - Expanding glob operands, including ** patterns
package utils
