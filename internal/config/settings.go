package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the optional user overrides read from settings.json in
// the config directory. All fields are optional; zero values fall back to
// the environment defaults.
type Settings struct {
	// Shell overrides $SHELL as the program spawned behind the PTY.
	Shell string `json:"shell,omitempty"`

	// Foreground overrides the default foreground color, as "#RRGGBB".
	Foreground string `json:"foreground,omitempty"`
}

// SettingsPath returns the settings file location.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads settings.json. A missing file yields zero settings.
func Load() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the settings file, creating the config directory if needed.
func Save(s Settings) error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
