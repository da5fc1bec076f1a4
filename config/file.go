package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// ConfigFilePath returns the canonical location for the saved configuration file.
func ConfigFilePath(fs FileSystem) (string, error) {
	configDir, err := fs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, "frontiers-tui", "config.json"), nil
}

// SaveConfig persists cfg as JSON to the user config directory.
// Settings changed at runtime via the command palette survive restarts this way.
func SaveConfig(fs FileSystem, cfg Config) error {
	path, err := ConfigFilePath(fs)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
