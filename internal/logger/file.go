package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/tailseek/internal/search"
)

// FileLogger logs search events to a per-run file in the log directory and
// maintains a latest.log symlink pointing to the most recent run.
// It is thread-safe and implements search.Observer.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

var _ search.Observer = (*FileLogger)(nil)

// NewFileLogger creates the log directory if needed, opens a timestamped run log
// file and points latest.log at it.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.New().String()

	// run-YYYYMMDD-HHMMSS-<id prefix>.log keeps runs in the same second apart
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", ts, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	// Symlinks may be unavailable (unprivileged windows); the run log still works
	_ = os.Symlink(filepath.Base(runFile), symlinkPath)

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	logger.writeRunLog("=== tailseek Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// RunFile returns the path of this run's log file.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

// RunID returns the identifier written in the log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("15:04:05"), level, message))
}

// SearchStarted records the goal and every root.
func (fl *FileLogger) SearchStarted(goal string, roots []string) {
	fl.LogInfo(fmt.Sprintf("Searching for %s", goal))
	for _, root := range roots {
		fl.LogInfo(fmt.Sprintf("  root: %s", root))
	}
}

// FrontierWidened records a failed round.
func (fl *FileLogger) FrontierWidened(round int, size int) {
	fl.LogInfo(fmt.Sprintf("Round %d: frontier widened to %d directories", round, size))
}

// GoalFound records the located file.
func (fl *FileLogger) GoalFound(path string) {
	fl.LogInfo(fmt.Sprintf("Found %s", path))
}

// SearchExhausted records an unsuccessful search.
func (fl *FileLogger) SearchExhausted(rounds int) {
	fl.LogWarn(fmt.Sprintf("Search exhausted after %d rounds", rounds))
}

// ListFailed records an unreadable directory at DEBUG level.
func (fl *FileLogger) ListFailed(dir string, err error) {
	fl.LogDebug(fmt.Sprintf("Unreadable directory %s: %v", dir, err))
}

// LogSummary writes the final statistics block.
func (fl *FileLogger) LogSummary(result search.Result) {
	if !fl.shouldLog("info") {
		return
	}

	status := "NOT FOUND"
	if result.Found {
		status = "FOUND"
	}

	ts := time.Now().Format("15:04:05")
	fl.writeRunLog(fmt.Sprintf(
		"\n[%s] === SEARCH SUMMARY ===\n"+
			"[%s] Status:       %s\n"+
			"[%s] Path:         %s\n"+
			"[%s] Rounds:       %d\n"+
			"[%s] Listings:     %d\n"+
			"[%s] Total time:   %.3fs\n"+
			"[%s] Completed at: %s\n",
		ts,
		ts, status,
		ts, result.Path,
		ts, result.Rounds,
		ts, result.Listings,
		ts, result.Duration.Seconds(),
		ts, time.Now().Format(time.RFC3339),
	))
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
