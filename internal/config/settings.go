package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/byterings/atm/internal/platform"
)

const (
	SettingsFileName = "settings.toml"
	DefaultBranch    = "main"
)

// GetConfigDir returns the path to the atm user config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, platform.GetConfigDirName()), nil
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, SettingsFileName), nil
}

// NewSettings returns the settings used when no file exists
func NewSettings() *Settings {
	return &Settings{
		UnknownCommand:       PolicyReject,
		DefaultCommitMessage: DefaultCommitMessage,
		Branch:               DefaultBranch,
	}
}

// LoadSettings loads user settings, falling back to defaults when the file is missing
func LoadSettings() (*Settings, error) {
	path, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFile(path)
}

// LoadSettingsFile loads settings from path
func LoadSettingsFile(path string) (*Settings, error) {
	settings := NewSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	// Empty values in the file keep their defaults
	defaults := NewSettings()
	if settings.UnknownCommand == "" {
		settings.UnknownCommand = defaults.UnknownCommand
	}
	if settings.DefaultCommitMessage == "" {
		settings.DefaultCommitMessage = defaults.DefaultCommitMessage
	}
	if settings.Branch == "" {
		settings.Branch = defaults.Branch
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w\nEdit it with: %s %s", path, err, platform.GetEditorSuggestion(), path)
	}

	return settings, nil
}

// Validate checks enum-like settings
func (s *Settings) Validate() error {
	switch s.UnknownCommand {
	case PolicyReject, PolicySave:
		return nil
	default:
		return fmt.Errorf("unknown_command must be %q or %q, got %q", PolicyReject, PolicySave, s.UnknownCommand)
	}
}
