// Package config loads the CLI-level configuration file.
//
// This is tool configuration (default vault location, verbosity), not
// the per-vault copy settings; those live in the vault itself, see the
// settings package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults read from config.yaml.
type Config struct {
	// Vault is the default vault path used when none is given on the
	// command line.
	Vault string `yaml:"vault"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Dir returns the config directory path. Uses OBSIDIAN_COPY_PATH_CONFIG
// if set, otherwise ~/.config/obsidian-copy-path.
func Dir() (string, error) {
	if dir := os.Getenv("OBSIDIAN_COPY_PATH_CONFIG"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "obsidian-copy-path"), nil
}

// Load reads config.yaml from the config directory. A missing file
// yields the zero config.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
