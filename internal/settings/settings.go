// Package settings persists the tool's configuration in the vault.
//
// The blob lives at .obsidian/plugins/copy-path/data.json, the same
// key-value store Obsidian hands to plugins. Loading merges the stored
// fields over defaults so older or partial blobs keep working; saving
// writes through immediately.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logos1012/obsidian-copy-path/internal/types"
)

const pluginDir = ".obsidian/plugins/copy-path"

// Store loads and saves settings for one vault.
type Store struct {
	vaultPath string
}

// NewStore creates a Store for the vault at vaultPath.
func NewStore(vaultPath string) *Store {
	return &Store{vaultPath: vaultPath}
}

// Path returns the absolute path of the settings blob.
func (s *Store) Path() string {
	return filepath.Join(s.vaultPath, filepath.FromSlash(pluginDir), "data.json")
}

// Load reads the persisted settings merged over defaults. A missing
// blob yields the defaults; a stale or unknown quoteStyle falls back
// to single quotes.
func (s *Store) Load() (types.Settings, error) {
	settings := types.DefaultSettings()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return types.DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}

	if !settings.QuoteStyle.Valid() {
		settings.QuoteStyle = types.QuoteSingle
	}
	return settings, nil
}

// Save persists the settings immediately, creating the plugin
// directory if needed.
func (s *Store) Save(settings types.Settings) error {
	dir := filepath.Dir(s.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
