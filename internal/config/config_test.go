// File: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
	if got := cfg.Widget.Debounce(); got != 250*time.Millisecond {
		t.Errorf("debounce = %v, want 250ms", got)
	}
	if got := cfg.Widget.IdleInterval(); got != 30*time.Second {
		t.Errorf("idle interval = %v, want 30s", got)
	}
	if got := cfg.Widget.SessionTTL(); got != 30*time.Minute {
		t.Errorf("session ttl = %v, want 30m", got)
	}
	if cfg.Widget.IdleChance != 0.15 {
		t.Errorf("idle chance = %v, want 0.15", cfg.Widget.IdleChance)
	}
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
log:
  level: debug
  format: console
admin:
  secret: sekrit
  password: hunter2
widget:
  debounce_ms: 500
  idle_chance: 0.5
  seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Admin.Secret != "sekrit" || cfg.Admin.Password != "hunter2" {
		t.Errorf("admin = %+v", cfg.Admin)
	}
	if got := cfg.Widget.Debounce(); got != 500*time.Millisecond {
		t.Errorf("debounce = %v, want 500ms", got)
	}
	if cfg.Widget.IdleChance != 0.5 {
		t.Errorf("idle chance = %v, want 0.5", cfg.Widget.IdleChance)
	}
	if cfg.Widget.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Widget.Seed)
	}
	// Unset sections still get defaults.
	if got := cfg.Widget.HintDelay(); got != 1200*time.Millisecond {
		t.Errorf("hint delay = %v, want 1200ms", got)
	}
	if !cfg.Runtime.Dev {
		t.Error("dev flag should be carried into runtime config")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, false); err == nil {
		t.Error("malformed yaml should fail")
	}
}
