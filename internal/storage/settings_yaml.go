package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"lapwatch/internal/core/model"
	"lapwatch/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

const (
	minSampleInterval = time.Millisecond
	maxSampleInterval = time.Second
)

type yamlSettings struct {
	Theme            string `yaml:"theme"`
	SampleIntervalMs int    `yaml:"sample_interval_ms"`
	LogLevel         string `yaml:"log_level"`
	WindowWidth      int    `yaml:"window_width"`
	WindowHeight     int    `yaml:"window_height"`
}

// SettingsStore reads and writes user preferences as YAML.
type SettingsStore struct {
	fs   afero.Fs
	path string
}

// NewSettingsStore creates a store for <configDir>/<appName>/settings.yaml.
func NewSettingsStore(fs afero.Fs, configDir, appName string) *SettingsStore {
	return &SettingsStore{
		fs:   fs,
		path: filepath.Join(configDir, appName, settingsFileName),
	}
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned. Invalid fields
// keep their defaults.
func (store *SettingsStore) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := afero.ReadFile(store.fs, store.path)
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

// Save writes user preferences to YAML.
func (store *SettingsStore) Save(settings preferences.Settings) error {
	if err := store.fs.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Theme:            string(settings.Theme),
		SampleIntervalMs: int(settings.SampleInterval / time.Millisecond),
		LogLevel:         settings.LogLevel,
		WindowWidth:      int(settings.WindowWidth),
		WindowHeight:     int(settings.WindowHeight),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := afero.WriteFile(store.fs, store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Theme != "" {
		if theme, err := model.ParseTheme(fileData.Theme); err == nil {
			settings.Theme = theme
		}
	}

	interval := time.Duration(fileData.SampleIntervalMs) * time.Millisecond
	if interval >= minSampleInterval && interval <= maxSampleInterval {
		settings.SampleInterval = interval
	}

	if _, err := log.ParseLevel(fileData.LogLevel); err == nil {
		settings.LogLevel = fileData.LogLevel
	}

	if fileData.WindowWidth > 0 && fileData.WindowHeight > 0 {
		settings.WindowWidth = float32(fileData.WindowWidth)
		settings.WindowHeight = float32(fileData.WindowHeight)
	}
}
