// Package actions provides the logic behind each stashit command.
//
// Each action corresponds to a command (stash, list, show, pop, remove, config)
// and turns its operands into stash engine calls, prompts and printed output.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog and Config
//   - Actions are stateless; the archive on disk is the only state
//   - Actions handle user interaction through the tui package
package actions
