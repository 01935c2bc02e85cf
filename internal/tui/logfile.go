package tui

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetLogFilePath returns the path to the log file.
// If STASHIT_LOG_FILE is set, uses that path.
// Otherwise, uses <XDG state home>/stashit/stashit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("STASHIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	return filepath.Join(xdg.StateHome, "stashit", "stashit.log")
}
