package cmd

import (
	"fmt"
	"time"

	"github.com/harrison/tailseek/internal/config"
	"github.com/spf13/cobra"
)

// addSearchFlags registers the flags shared by every command that reads the
// search configuration.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: $TAILSEEK_HOME/config.yaml)")
	cmd.Flags().StringSlice("priority", nil, "Priority directory pattern, most likely first (repeatable, replaces config)")
	cmd.Flags().StringSlice("exclude", nil, "Directory pattern skipped when widening (repeatable, replaces config)")
	cmd.Flags().StringArray("root", nil, "Directory to start from instead of the filesystem roots (repeatable)")
	cmd.Flags().String("bucket-mode", "", "Priority bucketing: every or best")
	cmd.Flags().Bool("follow-symlinks", true, "Treat symlinks to directories as directories")
}

// loadConfig loads the configuration file, applies changed flags and the
// optional goal argument, then validates the result.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	overrides, err := flagOverrides(cmd, args)
	if err != nil {
		return nil, err
	}
	cfg.MergeWithFlags(overrides)

	// --verbose raises the level to debug but never lowers an explicit trace
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && cfg.LogLevel != "trace" {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects the flags the user actually set.
// Flags not registered on cmd are skipped.
func flagOverrides(cmd *cobra.Command, args []string) (config.Overrides, error) {
	var o config.Overrides
	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}

	if len(args) > 0 {
		goal := args[0]
		o.Goal = &goal
	}
	if changed("priority") {
		v, _ := flags.GetStringSlice("priority")
		o.Priorities = &v
	}
	if changed("exclude") {
		v, _ := flags.GetStringSlice("exclude")
		o.Exclusions = &v
	}
	if changed("root") {
		v, _ := flags.GetStringArray("root")
		o.Roots = &v
	}
	if changed("bucket-mode") {
		v, _ := flags.GetString("bucket-mode")
		o.BucketMode = &v
	}
	if changed("follow-symlinks") {
		v, _ := flags.GetBool("follow-symlinks")
		o.FollowSymlinks = &v
	}
	if changed("workers") {
		v, _ := flags.GetInt("workers")
		o.Workers = &v
	}
	if changed("timeout") {
		s, _ := flags.GetString("timeout")
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return o, fmt.Errorf("invalid timeout format %q: %w", s, err)
		}
		o.Timeout = &timeout
	}
	if changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	if changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		o.LogDir = &v
	}
	if changed("file-log") {
		v, _ := flags.GetBool("file-log")
		o.FileLog = &v
	}
	return o, nil
}
