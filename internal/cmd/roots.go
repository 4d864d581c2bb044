package cmd

import (
	"fmt"

	"github.com/harrison/tailseek/internal/display"
	"github.com/spf13/cobra"
)

// NewRootsCommand creates the roots command
func NewRootsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "List the directories a search starts from",
		Long: `List the directories that seed the first search round: every filesystem
root (each drive letter on Windows, / elsewhere) or the configured --root values
resolved to absolute paths.`,
		Args: cobra.NoArgs,
		RunE: rootsCommand,
	}

	addSearchFlags(cmd)

	return cmd
}

func rootsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	fsys, err := cfg.FileSystem()
	if err != nil {
		return err
	}
	roots, err := fsys.Roots()
	if err != nil {
		return fmt.Errorf("failed to enumerate roots: %w", err)
	}

	display.ShowList(cmd.OutOrStdout(), "Roots", roots)
	return nil
}
