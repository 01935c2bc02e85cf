package main

import (
	"os"

	"stashit.dev/stashit/internal/cli"
	"stashit.dev/stashit/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		tui.NewSplog().Error("%s", tui.ColorRed(err.Error()))
		os.Exit(cli.ExitCode(err))
	}
}
