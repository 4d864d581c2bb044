package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetHomeWithEnvVar tests TAILSEEK_HOME env var takes precedence
func TestGetHomeWithEnvVar(t *testing.T) {
	customHome := t.TempDir()
	t.Setenv(HomeEnv, customHome)

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if home != customHome {
		t.Errorf("GetHome() = %q, want %q", home, customHome)
	}
}

// TestGetHomeFallback uses .tailseek in the working directory
func TestGetHomeFallback(t *testing.T) {
	t.Setenv(HomeEnv, "")

	home, err := GetHome()
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	cwd, _ := os.Getwd()
	if want := filepath.Join(cwd, ".tailseek"); home != want {
		t.Errorf("GetHome() = %q, want %q", home, want)
	}
}

// TestLoadFromHome reads config.yaml and relocates the default log dir
func TestLoadFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("goal: cargo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Goal != "cargo" {
		t.Errorf("Goal = %q, want cargo", cfg.Goal)
	}
	if want := filepath.Join(home, "logs"); cfg.LogDir != want {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, want)
	}
}
