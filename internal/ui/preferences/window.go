package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"lapwatch/internal/core/model"
)

const (
	minSampleMillis = 1
	maxSampleMillis = 1000
)

var logLevels = []string{"debug", "info", "warning", "error"}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	theme    *widget.RadioGroup
	sample   *widget.Entry
	logLevel *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Lapwatch Settings")

	theme := widget.NewRadioGroup([]string{string(model.ThemeLight), string(model.ThemeDark)}, nil)
	theme.Horizontal = true
	theme.Required = true

	sample := widget.NewEntry()
	logLevel := widget.NewSelect(logLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Theme"), theme),
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Refresh every"), sample, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		theme:    theme,
		sample:   sample,
		logLevel: logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.theme.SetSelected(string(settings.Theme))
	prefs.sample.SetText(fmt.Sprintf("%d", settings.SampleInterval.Milliseconds()))
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if theme, err := model.ParseTheme(prefs.theme.Selected); err == nil {
		settings.Theme = theme
	}
	if millis, ok := parseIntInRange(prefs.sample.Text, minSampleMillis, maxSampleMillis); ok {
		settings.SampleInterval = time.Duration(millis) * time.Millisecond
	}
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseIntInRange(value string, low, high int) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < low || parsed > high {
		return 0, false
	}
	return parsed, true
}
