package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/tailseek/internal/search"
	"gopkg.in/yaml.v3"
)

// Config represents tailseek configuration options
type Config struct {
	// Goal is the file name to locate, extension included
	Goal string `yaml:"goal"`

	// Priorities are directory-name patterns, most confident first.
	// "name" matches exactly, "name*" matches names containing "name" (both ignore case)
	Priorities []string `yaml:"priorities"`

	// Exclusions are directory-name patterns skipped when the search widens
	Exclusions []string `yaml:"exclusions"`

	// Roots replaces the filesystem roots as starting points (empty = all roots)
	Roots []string `yaml:"roots"`

	// BucketMode is "every" (a directory is tried once per matching priority)
	// or "best" (only under its highest matching priority)
	BucketMode string `yaml:"bucket_mode"`

	// FollowSymlinks treats symlinks to directories as directories
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Workers is the number of frontier directories searched concurrently (0 or 1 = sequential)
	Workers int `yaml:"workers"`

	// Timeout bounds the whole search (0 = no timeout)
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs will be written
	LogDir string `yaml:"log_dir"`

	// FileLog enables the per-run log file in LogDir
	FileLog bool `yaml:"file_log"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Goal:           "javac.exe",
		Priorities:     []string{"bin", "jdk*", "java*", "program*"},
		Exclusions:     []string{"windows*", "driver*", "game*"},
		Roots:          nil, // All filesystem roots
		BucketMode:     "every",
		FollowSymlinks: true,
		Workers:        1,
		Timeout:        0, // No timeout
		LogLevel:       "info",
		LogDir:         filepath.Join(".tailseek", "logs"),
		FileLog:        false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("30s", "2m")
	type yamlConfig struct {
		Goal           string   `yaml:"goal"`
		Priorities     []string `yaml:"priorities"`
		Exclusions     []string `yaml:"exclusions"`
		Roots          []string `yaml:"roots"`
		BucketMode     string   `yaml:"bucket_mode"`
		FollowSymlinks bool     `yaml:"follow_symlinks"`
		Workers        int      `yaml:"workers"`
		Timeout        string   `yaml:"timeout"`
		LogLevel       string   `yaml:"log_level"`
		LogDir         string   `yaml:"log_dir"`
		FileLog        bool     `yaml:"file_log"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Lists and booleans are taken whenever the key is present, so a file can
	// clear the default priorities or turn symlink following off.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	present := func(key string) bool {
		_, ok := rawMap[key]
		return ok
	}

	if yamlCfg.Goal != "" {
		cfg.Goal = yamlCfg.Goal
	}
	if present("priorities") {
		cfg.Priorities = yamlCfg.Priorities
	}
	if present("exclusions") {
		cfg.Exclusions = yamlCfg.Exclusions
	}
	if present("roots") {
		cfg.Roots = yamlCfg.Roots
	}
	if yamlCfg.BucketMode != "" {
		cfg.BucketMode = yamlCfg.BucketMode
	}
	if present("follow_symlinks") {
		cfg.FollowSymlinks = yamlCfg.FollowSymlinks
	}
	if yamlCfg.Workers != 0 {
		cfg.Workers = yamlCfg.Workers
	}
	if yamlCfg.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = normalizeLevel(yamlCfg.LogLevel)
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if present("file_log") {
		cfg.FileLog = yamlCfg.FileLog
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .tailseek/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".tailseek", "config.yaml"))
}

// Overrides carries CLI flag values. Nil fields leave the configuration untouched.
type Overrides struct {
	Goal           *string
	Priorities     *[]string
	Exclusions     *[]string
	Roots          *[]string
	BucketMode     *string
	FollowSymlinks *bool
	Workers        *int
	Timeout        *time.Duration
	LogLevel       *string
	LogDir         *string
	FileLog        *bool
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Goal != nil {
		c.Goal = *o.Goal
	}
	if o.Priorities != nil {
		c.Priorities = *o.Priorities
	}
	if o.Exclusions != nil {
		c.Exclusions = *o.Exclusions
	}
	if o.Roots != nil {
		c.Roots = *o.Roots
	}
	if o.BucketMode != nil {
		c.BucketMode = *o.BucketMode
	}
	if o.FollowSymlinks != nil {
		c.FollowSymlinks = *o.FollowSymlinks
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.Timeout != nil {
		c.Timeout = *o.Timeout
	}
	if o.LogLevel != nil {
		c.LogLevel = normalizeLevel(*o.LogLevel)
	}
	if o.LogDir != nil {
		c.LogDir = *o.LogDir
	}
	if o.FileLog != nil {
		c.FileLog = *o.FileLog
	}
}

// normalizeLevel lower-cases a log level the way the loggers read it.
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Goal) == "" {
		return fmt.Errorf("goal cannot be empty")
	}

	for i, p := range c.Priorities {
		if p == "" {
			return fmt.Errorf("priorities[%d] cannot be empty", i)
		}
	}
	for i, e := range c.Exclusions {
		if e == "" {
			return fmt.Errorf("exclusions[%d] cannot be empty", i)
		}
	}
	for i, r := range c.Roots {
		if r == "" {
			return fmt.Errorf("roots[%d] cannot be empty", i)
		}
	}

	if _, err := search.ParseBucketMode(c.BucketMode); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[normalizeLevel(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	// Timeout can be 0 (no timeout) or positive, negative is invalid
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}

	if c.FileLog && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when file_log is enabled")
	}

	return nil
}

// Properties builds the immutable search description from the configuration.
func (c *Config) Properties() (*search.Properties, error) {
	mode, err := search.ParseBucketMode(c.BucketMode)
	if err != nil {
		return nil, err
	}
	props, err := search.NewProperties(c.Goal, c.Priorities, c.Exclusions, search.WithBucketMode(mode))
	if err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}
	return props, nil
}

// FileSystem returns the filesystem the search runs against: the real one, limited
// to Roots when any are configured. Relative roots are resolved against the
// working directory.
func (c *Config) FileSystem() (search.FS, error) {
	osfs := search.NewOSFS(search.OSOptions{FollowSymlinks: c.FollowSymlinks})
	if len(c.Roots) == 0 {
		return osfs, nil
	}

	roots := make([]string, 0, len(c.Roots))
	for _, r := range c.Roots {
		abs, err := filepath.Abs(r)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", r, err)
		}
		roots = append(roots, abs)
	}
	return search.StaticRoots(osfs, roots...), nil
}
