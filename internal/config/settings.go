package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Settings holds the user-editable startup configuration.
type Settings struct {
	Duration  time.Duration
	SoundsDir string
	Theme     string
}

type yamlSettings struct {
	DurationMinutes int    `yaml:"duration_minutes"`
	SoundsDir       string `yaml:"sounds_dir"`
	Theme           string `yaml:"theme"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Duration:  DefaultDuration,
		SoundsDir: SoundsDirName,
		Theme:     "default",
	}
}

// LoadSettings reads settings from path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes settings to path, creating the parent directory.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DurationMinutes: int(settings.Duration / time.Minute),
		SoundsDir:       settings.SoundsDir,
		Theme:           settings.Theme,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// SettingsPath resolves the settings file under the user config dir.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.DurationMinutes != 0 {
		minutes := fileData.DurationMinutes
		if minutes < MinDurationMinutes {
			minutes = MinDurationMinutes
		}
		if minutes > MaxDurationMinutes {
			minutes = MaxDurationMinutes
		}
		settings.Duration = time.Duration(minutes) * time.Minute
	}
	if dir := strings.TrimSpace(fileData.SoundsDir); dir != "" {
		settings.SoundsDir = dir
	}
	if theme := strings.TrimSpace(fileData.Theme); theme != "" {
		settings.Theme = theme
	}
}
