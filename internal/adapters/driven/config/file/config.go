// Package file persists Datakit configuration as a TOML file in the
// user's home directory.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// configName is the file name inside the config directory.
const configName = "config.toml"

// Config holds the user-tunable settings. Zero values mean "use the
// built-in default"; CLI flags take precedence over everything here.
type Config struct {
	// CacheDir overrides the default cache directory.
	CacheDir string `toml:"cache_dir,omitempty"`

	// HTTPTimeoutSeconds bounds a single fetch. Zero keeps the 30s
	// default.
	HTTPTimeoutSeconds int `toml:"http_timeout_seconds,omitempty"`

	// RateLimitPerSecond throttles fetches client-side. Zero disables
	// throttling.
	RateLimitPerSecond float64 `toml:"rate_limit_per_second,omitempty"`
}

// DefaultDir returns the default config directory (~/.datakit).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datakit"), nil
}

// Load reads the config file from configDir. A missing file is not an
// error: it yields a zero Config so first runs work unconfigured.
// If configDir is empty, DefaultDir is used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	data, err := os.ReadFile(filepath.Join(configDir, configName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to configDir, creating the directory if
// needed.
func (c *Config) Save(configDir string) error {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, configName), data, 0o600)
}
