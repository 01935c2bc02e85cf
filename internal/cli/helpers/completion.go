package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/config"
	"stashit.dev/stashit/internal/stash"
)

// CompleteStashIndexes is a cobra.ValidArgsFunction returning the position of
// every stash, described by its date and first files
func CompleteStashIndexes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, _ := config.LoadOrDefault(config.FilePath())
	records := stash.NewEngine(config.ArchiveRoot(cfg)).List(nil)

	completions := make([]string, 0, len(records))
	for _, record := range records {
		completions = append(completions, fmt.Sprintf("%s\t%s %s",
			strconv.Itoa(record.Index),
			record.Time().Format("2006-01-02 15:04"),
			strings.Join(record.Files, ", "),
		))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// CompleteConfigKeys is a cobra.ValidArgsFunction returning the known configuration keys
func CompleteConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}
