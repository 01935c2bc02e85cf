package actions

import (
	"fmt"

	"stashit.dev/stashit/internal/config"
	"stashit.dev/stashit/internal/runtime"
)

// ConfigGetAction prints the value of a configuration key
func ConfigGetAction(ctx *runtime.Context, key string) error {
	value, err := config.Get(ctx.Config, key)
	if err != nil {
		return err
	}
	ctx.Splog.Info("%s", value)
	return nil
}

// ConfigSetAction updates a configuration key and writes the config file
func ConfigSetAction(ctx *runtime.Context, key string, value string) error {
	cfg := ctx.Config
	if err := config.Set(&cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(ctx.ConfigPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ctx.Config = cfg
	ctx.Splog.Info("Set %s to: %s", key, value)
	return nil
}

// ConfigPathAction prints where the config file lives and the resolved archive root
func ConfigPathAction(ctx *runtime.Context) error {
	ctx.Splog.Info("config: %s", ctx.ConfigPath)
	ctx.Splog.Info("archive: %s", config.ArchiveRoot(ctx.Config))
	return nil
}
