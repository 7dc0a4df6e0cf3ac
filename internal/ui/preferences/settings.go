package preferences

import (
	"time"

	"lapwatch/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Theme          model.Theme
	SampleInterval time.Duration
	LogLevel       string

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for Lapwatch.
func DefaultSettings() Settings {
	return Settings{
		Theme:          model.ThemeDark,
		SampleInterval: model.DefaultSampleInterval,
		LogLevel:       "info",
		WindowWidth:    420,
		WindowHeight:   520,
	}
}

// StopwatchConfig converts settings to StopwatchConfig.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	return model.StopwatchConfig{
		SampleInterval: settings.SampleInterval,
	}
}

// WithToggledTheme returns a copy of the settings with the opposite theme.
func (settings Settings) WithToggledTheme() Settings {
	settings.Theme = settings.Theme.Toggle()
	return settings
}
