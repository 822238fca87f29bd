package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api_url: https://ceyiz.example.com
timeout: 10s
session_path: /tmp/ceyiz/session.sqlite3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://ceyiz.example.com" {
		t.Errorf("unexpected api_url: %q", cfg.APIURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.SessionPath != "/tmp/ceyiz/session.sqlite3" {
		t.Errorf("unexpected session_path: %q", cfg.SessionPath)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "api_url: https://ceyiz.example.com\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.SessionPath == "" {
		t.Error("expected a default session path")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api_url: https://file.example.com\n")
	t.Setenv(EnvAPIURL, "https://env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("environment should win, got %q", cfg.APIURL)
	}
}

func TestMissingFileWithEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://env.example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("unexpected api_url: %q", cfg.APIURL)
	}
}

func TestMissingAPIURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for unset api_url")
	}
	if !strings.Contains(err.Error(), "api_url not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidYAML(t *testing.T) {
	path := writeConfig(t, "api_url: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
