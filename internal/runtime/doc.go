// Package runtime provides the execution context for stashit commands.
//
// It loads the configuration, opens the logger and binds the stash engine to
// the configured archive root, so commands receive everything in one value.
package runtime
