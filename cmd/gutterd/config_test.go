package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gutterd.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "gutterd.alpha"
listen = "127.0.0.1:9500"
admin = "127.0.0.1:9501"
echo = true
`)
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "gutterd.alpha" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.ListenAddr != "127.0.0.1:9500" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.AdminAddr != "127.0.0.1:9501" {
		t.Fatalf("unexpected admin addr: %q", cfg.AdminAddr)
	}
	if !cfg.Echo {
		t.Fatalf("expected echo enabled")
	}
}

func TestLoadServiceConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
echo = false
`)
	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "gutterd.local" {
		t.Fatalf("unexpected default name: %q", cfg.Name)
	}
	if cfg.ListenAddr != ":9400" {
		t.Fatalf("unexpected default listen addr: %q", cfg.ListenAddr)
	}
	if cfg.AdminAddr != "" {
		t.Fatalf("unexpected default admin addr: %q", cfg.AdminAddr)
	}
	if cfg.Echo {
		t.Fatalf("expected echo disabled by default")
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	if _, err := loadServiceConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
