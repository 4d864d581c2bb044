package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/tailseek/internal/display"
	"github.com/harrison/tailseek/internal/filelock"
	"github.com/harrison/tailseek/internal/logger"
	"github.com/harrison/tailseek/internal/search"
	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [goal]",
		Short: "Search for a file, most likely directories first",
		Long: `Search every filesystem root (or each --root) for a file named exactly [goal].

The goal defaults to the configured one (javac.exe out of the box). Progress is
logged to stderr; the located path is printed alone on stdout.

Exit code: 0 if found, 2 if the search was exhausted, 1 on any other error.

Examples:
  tailseek find                                  # Default goal and patterns
  tailseek find cargo --priority bin,.cargo      # Custom goal and priorities
  tailseek find javac.exe --root /opt --root /usr
  tailseek find --workers 8 --timeout 2m         # Parallel, bounded search
  tailseek find --output java-home.txt           # Also write the path to a file
  tailseek find --file-log --log-dir ./logs      # Keep a per-run log file`,
		Args: cobra.MaximumNArgs(1),
		RunE: findCommand,
	}

	addSearchFlags(cmd)
	cmd.Flags().Int("workers", 1, "Frontier directories searched concurrently")
	cmd.Flags().String("timeout", "", "Maximum search time (e.g., 30s, 5m); 0 for none")
	cmd.Flags().String("log-level", "", "Console and file log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().Bool("file-log", false, "Write a per-run log file to the log directory")
	cmd.Flags().String("output", "", "Also write the located path to this file")
	cmd.Flags().Bool("verbose", false, "Log unreadable directories and other debug detail")

	return cmd
}

// findCommand implements the find command logic
func findCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	props, err := cfg.Properties()
	if err != nil {
		return err
	}
	fsys, err := cfg.FileSystem()
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	consoleLog := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	observers := search.MultiObserver{consoleLog}

	var fileLog *logger.FileLogger
	if cfg.FileLog {
		fileLog, err = logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		observers = append(observers, fileLog)
	}

	logError := func(message string) {
		consoleLog.LogError(message)
		if fileLog != nil {
			fileLog.LogError(message)
		}
	}

	settings := fmt.Sprintf("Effective settings: priorities=%v exclusions=%v bucket_mode=%s workers=%d timeout=%s follow_symlinks=%t",
		props.Priorities(), props.Exclusions(), props.BucketMode(), cfg.Workers, cfg.Timeout, cfg.FollowSymlinks)
	consoleLog.LogTrace(settings)
	if fileLog != nil {
		fileLog.LogTrace(settings)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	// Set up signal handling so Ctrl-C stops the search cleanly
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			consoleLog.LogWarn("Received interrupt signal, stopping search...")
			cancel()
		case <-ctx.Done():
		}
	}()

	searcher := search.NewSearcher(props, fsys,
		search.WithObserver(observers),
		search.WithWorkers(cfg.Workers),
	)

	result, err := searcher.Search(ctx)
	if err != nil {
		logError(fmt.Sprintf("Search stopped: %v", err))
		return fmt.Errorf("search failed: %w", err)
	}

	consoleLog.LogSummary(result)
	if fileLog != nil {
		fileLog.LogSummary(result)
	}

	if !result.Found {
		display.ShowResult(stderr, props.Goal(), result, logger.IsTerminal(stderr))
		return &ExitError{
			Code:   ExitNotFound,
			Err:    fmt.Errorf("%s: %w", props.Goal(), ErrNotFound),
			Silent: true,
		}
	}

	display.ShowResult(stdout, props.Goal(), result, logger.IsTerminal(stdout))

	if output != "" {
		if err := filelock.LockAndWrite(ctx, output, []byte(result.Path+"\n")); err != nil {
			logError(fmt.Sprintf("Could not write result to %s: %v", output, err))
			return fmt.Errorf("failed to write result: %w", err)
		}
		consoleLog.LogDebug(fmt.Sprintf("Result written to %s", output))
	}
	if fileLog != nil {
		consoleLog.LogDebug(fmt.Sprintf("Run log written to %s", fileLog.RunFile()))
	}

	return nil
}
