package runtime

import (
	"context"

	"stashit.dev/stashit/internal/config"
	"stashit.dev/stashit/internal/stash"
	"stashit.dev/stashit/internal/tui"
)

// Context provides access to the engine, configuration and output for commands
type Context struct {
	context.Context
	Engine     stash.Engine
	Splog      *tui.Splog
	Config     config.Config
	ConfigPath string
}

// NewContext creates a context around an existing engine, logging to the console only
func NewContext(ctx context.Context, eng stash.Engine) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context: ctx,
		Engine:  eng,
		Splog:   tui.NewSplog(),
		Config:  config.Default(),
	}
}

// GetContext builds the context for one command invocation.
// A config file that cannot be read falls back to the defaults, and a log file
// that cannot be opened falls back to console-only logging; both are reported
// at debug level.
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	splog, logErr := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if logErr != nil {
		splog = tui.NewSplog()
		splog.Debug("File logging disabled: %v", logErr)
	}

	configPath := config.FilePath()
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		splog.Debug("Using default configuration: %v", err)
	}

	root := config.ArchiveRoot(cfg)
	splog.Debug("Archive root: %s", root)

	return &Context{
		Context:    ctx,
		Engine:     stash.NewEngine(root, stash.WithLogger(splog)),
		Splog:      splog,
		Config:     cfg,
		ConfigPath: configPath,
	}, nil
}

// Close releases the resources held by the context
func (c *Context) Close() error {
	return c.Splog.Close()
}
