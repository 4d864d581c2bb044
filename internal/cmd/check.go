package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/tailseek/internal/config"
	"github.com/harrison/tailseek/internal/display"
	"github.com/harrison/tailseek/internal/pattern"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [goal]",
		Short: "Validate the configuration and show the effective search settings",
		Long: `Load the configuration file, apply flags, validate the result and print
the settings a find with the same arguments would use.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MaximumNArgs(1),
		RunE: checkCommand,
	}

	addSearchFlags(cmd)

	return cmd
}

// checkCommand implements the check command logic
func checkCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	// Builds the same Properties find would, so goal errors surface here too
	props, err := cfg.Properties()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration is valid.\n\n")
	fmt.Fprintf(out, "  Goal: %s\n", props.Goal())
	fmt.Fprintf(out, "  Bucket mode: %s\n", props.BucketMode())
	fmt.Fprintf(out, "  Follow symlinks: %t\n", cfg.FollowSymlinks)
	fmt.Fprintf(out, "  Workers: %d\n", cfg.Workers)
	if cfg.Timeout > 0 {
		fmt.Fprintf(out, "  Timeout: %s\n", cfg.Timeout)
	} else {
		fmt.Fprintf(out, "  Timeout: none\n")
	}
	fmt.Fprintf(out, "\n")

	display.ShowList(out, "Priorities", describePatterns(props.Priorities()))
	display.ShowList(out, "Exclusions", describePatterns(props.Exclusions()))
	showConfiguredRoots(out, cfg)

	return nil
}

// describePatterns renders each pattern with how it compares names.
func describePatterns(raws []string) []string {
	list := pattern.CompileList(raws)
	out := make([]string, 0, len(list))
	for _, p := range list {
		switch p.Kind() {
		case pattern.KindContains:
			out = append(out, fmt.Sprintf("%s (name contains %q)", p, p.Text()))
		default:
			out = append(out, fmt.Sprintf("%s (name is %q)", p, p.Text()))
		}
	}
	return out
}

func showConfiguredRoots(w io.Writer, cfg *config.Config) {
	if len(cfg.Roots) == 0 {
		fmt.Fprintf(w, "Roots:\n  all filesystem roots\n")
		return
	}
	display.ShowList(w, "Roots", cfg.Roots)
}
