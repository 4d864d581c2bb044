package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the home directory.
const HomeEnv = "TAILSEEK_HOME"

// GetHome returns the tailseek home directory
// Priority order:
//  1. TAILSEEK_HOME environment variable (if set)
//  2. .tailseek in the current working directory (fallback)
//
// The directory is not created; nothing is written there unless file logging is on
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".tailseek"), nil
}

// Load loads config.yaml from the home directory and points a relative default
// log directory at the home directory's logs folder
func Load() (*Config, error) {
	home, err := GetHome()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(filepath.Join(home, "config.yaml"))
	if err != nil {
		return nil, err
	}
	if cfg.LogDir == DefaultConfig().LogDir {
		cfg.LogDir = filepath.Join(home, "logs")
	}
	return cfg, nil
}
