package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/harrison/tailseek/internal/search"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Goal != "javac.exe" {
		t.Errorf("Goal = %q, want %q", cfg.Goal, "javac.exe")
	}
	if !reflect.DeepEqual(cfg.Priorities, []string{"bin", "jdk*", "java*", "program*"}) {
		t.Errorf("Priorities = %v", cfg.Priorities)
	}
	if !reflect.DeepEqual(cfg.Exclusions, []string{"windows*", "driver*", "game*"}) {
		t.Errorf("Exclusions = %v", cfg.Exclusions)
	}
	if cfg.BucketMode != "every" {
		t.Errorf("BucketMode = %q, want %q", cfg.BucketMode, "every")
	}
	if !cfg.FollowSymlinks {
		t.Errorf("FollowSymlinks = false, want true")
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `goal: go.exe
priorities:
  - bin
  - go*
exclusions: []
roots:
  - /opt
bucket_mode: best
follow_symlinks: false
workers: 4
timeout: 30s
log_level: debug
log_dir: /tmp/logs
file_log: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Goal != "go.exe" {
		t.Errorf("Goal = %q, want %q", cfg.Goal, "go.exe")
	}
	if !reflect.DeepEqual(cfg.Priorities, []string{"bin", "go*"}) {
		t.Errorf("Priorities = %v", cfg.Priorities)
	}
	if len(cfg.Exclusions) != 0 {
		t.Errorf("Exclusions = %v, want empty (explicitly cleared)", cfg.Exclusions)
	}
	if !reflect.DeepEqual(cfg.Roots, []string{"/opt"}) {
		t.Errorf("Roots = %v", cfg.Roots)
	}
	if cfg.BucketMode != "best" {
		t.Errorf("BucketMode = %q, want best", cfg.BucketMode)
	}
	if cfg.FollowSymlinks {
		t.Errorf("FollowSymlinks = true, want false")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("LogDir = %q, want /tmp/logs", cfg.LogDir)
	}
	if !cfg.FileLog {
		t.Errorf("FileLog = false, want true")
	}
}

// TestLoadConfigPartialFile keeps defaults for keys the file omits
func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("goal: python.exe\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Goal != "python.exe" {
		t.Errorf("Goal = %q, want python.exe", cfg.Goal)
	}
	if !reflect.DeepEqual(cfg.Priorities, defaults.Priorities) {
		t.Errorf("Priorities = %v, want defaults", cfg.Priorities)
	}
	if cfg.FollowSymlinks != defaults.FollowSymlinks {
		t.Errorf("FollowSymlinks changed without being set")
	}
}

// TestLogLevelCaseInsensitive accepts levels in any case, as the loggers do
func TestLogLevelCaseInsensitive(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("log_level: INFO\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	level := " Trace "
	cfg.MergeWithFlags(Overrides{LogLevel: &level})
	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", cfg.LogLevel)
	}

	cfg.LogLevel = "WARN"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with upper-case level error = %v", err)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigInvalidYAML tests error handling for malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "goal: [unclosed\n"},
		{name: "bad timeout", content: "timeout: soon\n"},
		{name: "wrong type", content: "workers: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}

// TestLoadConfigFromDir reads .tailseek/config.yaml below the directory
func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".tailseek"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".tailseek", "config.yaml"), []byte("workers: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

// TestMergeWithFlags verifies flags override only what they set
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	goal := "node.exe"
	priorities := []string{"nodejs*"}
	workers := 8
	timeout := time.Minute
	follow := false

	cfg.MergeWithFlags(Overrides{
		Goal:           &goal,
		Priorities:     &priorities,
		Workers:        &workers,
		Timeout:        &timeout,
		FollowSymlinks: &follow,
	})

	if cfg.Goal != goal {
		t.Errorf("Goal = %q, want %q", cfg.Goal, goal)
	}
	if !reflect.DeepEqual(cfg.Priorities, priorities) {
		t.Errorf("Priorities = %v, want %v", cfg.Priorities, priorities)
	}
	if cfg.Workers != workers {
		t.Errorf("Workers = %d, want %d", cfg.Workers, workers)
	}
	if cfg.Timeout != timeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, timeout)
	}
	if cfg.FollowSymlinks {
		t.Errorf("FollowSymlinks = true, want false")
	}
	if !reflect.DeepEqual(cfg.Exclusions, DefaultConfig().Exclusions) {
		t.Errorf("Exclusions changed without a flag: %v", cfg.Exclusions)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel changed without a flag: %q", cfg.LogLevel)
	}
}

// TestValidate covers every rejected value
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "empty goal", mutate: func(c *Config) { c.Goal = " " }, wantErr: true},
		{name: "empty priority", mutate: func(c *Config) { c.Priorities = []string{""} }, wantErr: true},
		{name: "empty exclusion", mutate: func(c *Config) { c.Exclusions = []string{"a", ""} }, wantErr: true},
		{name: "empty root", mutate: func(c *Config) { c.Roots = []string{""} }, wantErr: true},
		{name: "bad bucket mode", mutate: func(c *Config) { c.BucketMode = "all" }, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "file log without dir", mutate: func(c *Config) { c.FileLog = true; c.LogDir = "" }, wantErr: true},
		{name: "no patterns", mutate: func(c *Config) { c.Priorities = nil; c.Exclusions = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestProperties builds search properties from the configuration
func TestProperties(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BucketMode = "best"

	props, err := cfg.Properties()
	if err != nil {
		t.Fatalf("Properties() error = %v", err)
	}
	if props.Goal() != cfg.Goal {
		t.Errorf("Goal() = %q, want %q", props.Goal(), cfg.Goal)
	}
	if props.BucketMode() != search.BucketBestRank {
		t.Errorf("BucketMode() = %v, want best", props.BucketMode())
	}

	cfg.Goal = ""
	if _, err := cfg.Properties(); !errors.Is(err, search.ErrEmptyGoal) {
		t.Errorf("Properties() error = %v, want ErrEmptyGoal", err)
	}
}

// TestFileSystem resolves configured roots to absolute paths
func TestFileSystem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roots = []string{"relative/dir"}

	fsys, err := cfg.FileSystem()
	if err != nil {
		t.Fatalf("FileSystem() error = %v", err)
	}
	roots, err := fsys.Roots()
	if err != nil {
		t.Fatalf("Roots() error = %v", err)
	}
	want, _ := filepath.Abs("relative/dir")
	if !reflect.DeepEqual(roots, []string{want}) {
		t.Errorf("Roots() = %v, want %v", roots, []string{want})
	}
}
