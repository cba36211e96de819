package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// isolate points the working directory and home at a fresh temp dir so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("REMCAL_CONFIG_PATH", "")
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(New(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReminderColor != "white" {
		t.Fatalf("expected default color white, got %q", cfg.ReminderColor)
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "" || !cfg.Mouse || cfg.Theme != "auto" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	body := []byte("log:\n  file: ~/remcal.log\n  level: debug\nreminder:\n  color: blue\nui:\n  mouse: false\n")
	if err := os.WriteFile(filepath.Join(dir, ".remcal.yaml"), body, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(New(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	home, err := homedir.Dir()
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if want := filepath.Join(home, "remcal.log"); cfg.LogFile != want {
		t.Fatalf("expected log file %q, got %q", want, cfg.LogFile)
	}
	if cfg.LogLevel != "debug" || cfg.ReminderColor != "blue" || cfg.Mouse {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".remcal.yaml"), []byte("reminder:\n  color: blue\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("REMCAL_REMINDER_COLOR", "red")

	cfg, err := Load(New(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReminderColor != "red" {
		t.Fatalf("expected env override red, got %q", cfg.ReminderColor)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".remcal.yaml"), []byte("log: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(New(dir)); err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
}
