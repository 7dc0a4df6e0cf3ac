package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTheme indicates a theme name that is neither light nor dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the visual palette selected by the user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (theme Theme) Toggle() Theme {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is the dark palette.
func (theme Theme) IsDark() bool {
	return theme == ThemeDark
}

// ParseTheme converts a stored theme name into a Theme.
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, value)
	}
}
