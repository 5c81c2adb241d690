// Package project persists generation settings and transform snapshots
// as JSON.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/creativehubiion/roadforge/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "roadforge"), nil
}

// DefaultConfigPath returns the default settings file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveSettings persists settings to the given path as JSON, creating
// missing parent directories.
func SaveSettings(path string, s model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads settings from the given path. A missing file
// returns DefaultSettings with no error.
func LoadSettings(path string) (model.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Settings{}, err
	}
	return s, nil
}
