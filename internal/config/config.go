// Package config loads the client configuration from a YAML file, with the
// API base URL overridable through the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAPIURL overrides the configured API base URL when set.
const EnvAPIURL = "CEYIZ_API_URL"

// DefaultTimeout is the HTTP timeout used when the file does not set one.
const DefaultTimeout = 30 * time.Second

// Config is the client configuration.
type Config struct {
	APIURL      string
	Timeout     time.Duration
	SessionPath string
	LogPath     string
}

// fileConfig is the on-disk shape; timeout is a duration string like "30s".
type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	Timeout     string `yaml:"timeout"`
	SessionPath string `yaml:"session_path"`
	LogPath     string `yaml:"log_path"`
}

// DefaultPath returns the default config file location
// (~/.config/ceyiz/config.yaml).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "ceyiz", "config.yaml")
}

// defaultSessionPath returns the default session database location
// (~/.local/share/ceyiz/session.sqlite3).
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.sqlite3"
	}
	return filepath.Join(home, ".local", "share", "ceyiz", "session.sqlite3")
}

// Load reads the config file at path and applies defaults and environment
// overrides. A missing file is fine as long as the API URL comes from the
// environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Timeout:     DefaultTimeout,
		SessionPath: defaultSessionPath(),
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		cfg.APIURL = file.APIURL
		cfg.LogPath = file.LogPath
		if file.SessionPath != "" {
			cfg.SessionPath = file.SessionPath
		}
		if file.Timeout != "" {
			timeout, err := time.ParseDuration(file.Timeout)
			if err != nil {
				return nil, fmt.Errorf("parsing timeout: %w", err)
			}
			cfg.Timeout = timeout
		}
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api_url not set: configure it in %s or via %s", path, EnvAPIURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = defaultSessionPath()
	}

	return cfg, nil
}
