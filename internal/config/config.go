package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName is the namespace used for the config, data and log directories
	AppName = "stashit"
	// DefaultPath is the archive root used when no configuration is present
	DefaultPath = "~/.local/share/" + AppName + "/"
	// KeyPath is the configuration key holding the archive root
	KeyPath = "path"
)

// Keys lists every configuration key stashit understands
var Keys = []string{KeyPath}

// Config represents the user configuration
type Config struct {
	Path string `koanf:"path"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{Path: DefaultPath}
}

// FilePath returns the path to the configuration file.
// If STASHIT_CONFIG is set, uses that path.
// Otherwise, uses <XDG config home>/stashit/stashit.toml
func FilePath() string {
	if customPath := os.Getenv("STASHIT_CONFIG"); customPath != "" {
		return customPath
	}
	return filepath.Join(xdg.ConfigHome, AppName, AppName+".toml")
}

// Load reads the configuration file at configPath.
// A missing file is not an error and yields the default configuration.
func Load(configPath string) (Config, error) {
	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
		return config, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	if err := k.Unmarshal("", &config); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	if strings.TrimSpace(config.Path) == "" {
		config.Path = DefaultPath
	}

	return config, nil
}

// LoadOrDefault reads the configuration, falling back to the defaults when the
// file cannot be read. The returned error is informational only.
func LoadOrDefault(configPath string) (Config, error) {
	config, err := Load(configPath)
	if err != nil {
		return Default(), err
	}
	return config, nil
}

// Save writes the configuration to configPath, creating its directory if needed
func Save(configPath string, config Config) error {
	k := koanf.New(".")
	if err := k.Set(KeyPath, config.Path); err != nil {
		return fmt.Errorf("failed to set %s: %w", KeyPath, err)
	}

	data, err := k.Marshal(toml.Parser())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(configPath, data, 0600)
}

// Get returns the value of a configuration key
func Get(config Config, key string) (string, error) {
	switch key {
	case KeyPath:
		return config.Path, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set updates the value of a configuration key
func Set(config *Config, key string, value string) error {
	switch key {
	case KeyPath:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", KeyPath)
		}
		// Relative paths would move with the working directory
		if !strings.HasPrefix(value, "~") && !filepath.IsAbs(value) {
			abs, err := filepath.Abs(value)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", value, err)
			}
			value = abs
		}
		config.Path = value
		return nil
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ArchiveRoot resolves the configured path to an absolute directory.
// A leading "~" is replaced by the home directory, or by the system temp
// directory when the home directory cannot be determined.
func ArchiveRoot(config Config) string {
	path := config.Path
	if path == "" {
		path = DefaultPath
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = os.TempDir()
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
