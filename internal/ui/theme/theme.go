// Package theme provides the light and dark Fyne themes selectable by the user.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"lapwatch/internal/core/model"
)

// readoutSize is the text size used for the elapsed-time readout.
const readoutSize = float32(52)

// SizeNameReadout is the theme size name of the elapsed-time readout.
const SizeNameReadout fyne.ThemeSizeName = "lapwatchReadout"

// Theme wraps the default Fyne theme and pins it to one variant, regardless
// of the operating system preference.
type Theme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// New returns the Fyne theme for the given palette.
func New(selected model.Theme) *Theme {
	variant := fynetheme.VariantLight
	if selected.IsDark() {
		variant = fynetheme.VariantDark
	}
	return &Theme{base: fynetheme.DefaultTheme(), variant: variant}
}

// Variant returns the pinned variant.
func (current *Theme) Variant() fyne.ThemeVariant {
	return current.variant
}

// Color returns the named colour in the pinned variant.
func (current *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return current.base.Color(name, current.variant)
}

// Font returns the default font for the style.
func (current *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return current.base.Font(style)
}

// Icon returns the default icon for the name.
func (current *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return current.base.Icon(name)
}

// Size returns the readout size or the default size for the name.
func (current *Theme) Size(name fyne.ThemeSizeName) float32 {
	if name == SizeNameReadout {
		return readoutSize
	}
	return current.base.Size(name)
}

// Apply installs the theme for the selected palette on the app.
func Apply(app fyne.App, selected model.Theme) {
	app.Settings().SetTheme(New(selected))
}
