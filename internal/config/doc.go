// Package config manages stashit configuration.
//
// It handles:
//   - Locating the user configuration file (XDG config home or STASHIT_CONFIG)
//   - Loading and saving the TOML configuration
//   - Resolving the archive root directory, including "~" expansion
package config
