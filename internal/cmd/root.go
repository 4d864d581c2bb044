package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tailseek
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tailseek",
		Short: "Find a file by searching the likely directories first",
		Long: `tailseek locates a single named file, such as javac.exe, without an index.

It trusts the tail end of the file's path to be predictable. Directories whose
names match the priority patterns (bin, jdk*, java*, program*) are searched
depth-first before anything else. When those descents fail, the search widens
one directory level at a time, skipping excluded names (windows*, driver*, game*),
until the file is found or nothing is left to search.

Configuration is loaded from $TAILSEEK_HOME/config.yaml (default .tailseek/config.yaml).
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints errors so exit codes and messages stay in one place
		SilenceErrors: true,
	}

	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewRootsCommand())

	return cmd
}
