// Package config resolves jobber's small global config file: the path to the
// job database. It follows the teacher's typed-struct-plus-defaults shape
// (see the daemon config this package replaces) but the file itself is tiny,
// matching the single `database` field spec.md describes.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig is the on-disk global configuration: where the job database
// lives. It intentionally carries nothing else — jobber has no daemon, no
// network, no plugins to configure.
type AppConfig struct {
	Database string `json:"database"`
}

// DefaultDatabasePath returns "<home>/jobber.json", the fallback used when no
// config file exists.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, "jobber.json")
}

// ConfigFilePath returns the path jobber looks for its config file at:
// "<user-config-dir>/jobber/config.json", falling back to "$HOME/.jobber.json"
// when the OS exposes no config directory.
func ConfigFilePath() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "jobber", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".jobber.json")
}

// Load reads the config file, returning a default configuration (pointing at
// DefaultDatabasePath) if the file does not exist. Any other read or parse
// error is fatal to the caller.
func Load() (*AppConfig, error) {
	path := ConfigFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{Database: DefaultDatabasePath()}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabasePath()
	}
	return &cfg, nil
}

// Save writes the config file, creating its directory if necessary.
func Save(cfg *AppConfig) error {
	path := ConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
