package window

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lapwatch/internal/core/model"
	"lapwatch/internal/core/stopwatch"
	uitheme "lapwatch/internal/ui/theme"
)

const defaultReadoutSize = float32(48)

// Config defines window visuals.
type Config struct {
	Title  string
	Width  float32
	Height float32
	Theme  model.Theme
}

// Callbacks defines handlers for actions the window does not own.
type Callbacks struct {
	OnToggleTheme func()
	OnPreferences func()
}

// Window renders the stopwatch and forwards user actions to the engine.
type Window struct {
	app          fyne.App
	window       fyne.Window
	engine       *stopwatch.Engine
	callbacks    Callbacks
	readout      *canvas.Text
	startButton  *widget.Button
	stopButton   *widget.Button
	resetButton  *widget.Button
	lapButton    *widget.Button
	clearButton  *widget.Button
	themeButton  *widget.Button
	lapList      *widget.List
	laps         []stopwatch.Lap
	controls     stopwatch.Controls
	currentTheme model.Theme
}

// New creates the stopwatch window.
func New(app fyne.App, engine *stopwatch.Engine, config Config, callbacks Callbacks) *Window {
	if config.Title == "" {
		config.Title = "Lapwatch"
	}

	display := &Window{
		app:       app,
		window:    app.NewWindow(config.Title),
		engine:    engine,
		callbacks: callbacks,
	}

	display.readout = canvas.NewText(stopwatch.Format(0), display.foregroundColor())
	display.readout.Alignment = fyne.TextAlignCenter
	display.readout.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	display.readout.TextSize = display.readoutSize()

	display.startButton = widget.NewButtonWithIcon("Start", fynetheme.MediaPlayIcon(), display.start)
	display.startButton.Importance = widget.HighImportance
	display.stopButton = widget.NewButtonWithIcon("Stop", fynetheme.MediaStopIcon(), display.stop)
	display.resetButton = widget.NewButtonWithIcon("Reset", fynetheme.MediaReplayIcon(), display.Reset)
	display.lapButton = widget.NewButtonWithIcon("Lap", fynetheme.ContentAddIcon(), display.Lap)
	display.clearButton = widget.NewButtonWithIcon("Clear laps", fynetheme.DeleteIcon(), display.clearLaps)
	display.themeButton = widget.NewButtonWithIcon("Theme", fynetheme.ColorPaletteIcon(), display.toggleTheme)

	display.lapList = widget.NewList(
		func() int {
			return len(display.laps)
		},
		func() fyne.CanvasObject {
			return container.NewGridWithColumns(3,
				widget.NewLabel("#00"),
				widget.NewLabelWithStyle(stopwatch.Format(0), fyne.TextAlignCenter, fyne.TextStyle{Monospace: true}),
				widget.NewLabelWithStyle(stopwatch.FormatDelta(0), fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true}),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(display.laps) {
				return
			}
			lap := display.laps[id]
			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(lap.Label())
			row.Objects[1].(*widget.Label).SetText(stopwatch.Format(lap.Total))
			row.Objects[2].(*widget.Label).SetText(stopwatch.FormatDelta(lap.Delta))
		},
	)

	controls := container.NewGridWithColumns(3,
		display.startButton, display.stopButton, display.resetButton,
		display.lapButton, display.clearButton, display.themeButton,
	)
	top := container.NewVBox(container.NewPadded(display.readout), controls, widget.NewSeparator())
	display.window.SetContent(container.NewBorder(top, nil, nil, nil, display.lapList))

	if config.Width > 0 && config.Height > 0 {
		display.window.Resize(fyne.NewSize(config.Width, config.Height))
	}
	display.window.Canvas().SetOnTypedKey(display.handleKey)

	display.ApplyTheme(config.Theme)
	display.sync()
	return display
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// Hide hides the window without stopping the engine.
func (display *Window) Hide() {
	display.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (display *Window) SetCloseIntercept(handler func()) {
	display.window.SetCloseIntercept(handler)
}

// HandleEvent renders an engine event. It must run on the Fyne goroutine.
func (display *Window) HandleEvent(event stopwatch.Event) {
	display.setElapsed(event.Elapsed)
	display.applyControls(event.Controls)
	switch event.Type {
	case stopwatch.EventLap, stopwatch.EventReset, stopwatch.EventLapsCleared:
		display.refreshLaps()
	}
}

// ApplyTheme recolours widgets the theme does not manage.
func (display *Window) ApplyTheme(selected model.Theme) {
	display.currentTheme = selected
	display.readout.Color = display.foregroundColor()
	display.readout.TextSize = display.readoutSize()
	display.readout.Refresh()

	if selected.IsDark() {
		display.themeButton.SetText("Light theme")
	} else {
		display.themeButton.SetText("Dark theme")
	}
}

func (display *Window) start() {
	display.engine.Start()
	display.sync()
}

func (display *Window) stop() {
	display.engine.Stop()
	display.sync()
}

// ToggleRun starts a stopped engine or stops a running one.
func (display *Window) ToggleRun() {
	if display.engine.Running() {
		display.stop()
		return
	}
	display.start()
}

// Reset zeroes the engine and clears the lap list.
func (display *Window) Reset() {
	display.engine.Reset()
	display.sync()
}

// Lap records a lap when the current state allows it.
func (display *Window) Lap() {
	if !display.engine.Controls().Lap {
		return
	}
	display.engine.Lap()
	display.sync()
}

func (display *Window) clearLaps() {
	display.engine.ClearLaps()
	display.sync()
}

func (display *Window) toggleTheme() {
	if display.callbacks.OnToggleTheme != nil {
		display.callbacks.OnToggleTheme()
	}
}

// handleKey maps Space to start/stop, R to reset, L to lap and T to theme.
func (display *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		display.ToggleRun()
	case fyne.KeyR:
		display.Reset()
	case fyne.KeyL:
		display.Lap()
	case fyne.KeyT:
		display.toggleTheme()
	case fyne.KeyComma:
		if display.callbacks.OnPreferences != nil {
			display.callbacks.OnPreferences()
		}
	}
}

func (display *Window) sync() {
	snapshot := display.engine.Snapshot()
	display.setElapsed(snapshot.Elapsed)
	display.applyControls(stopwatch.Availability(snapshot))
	display.refreshLaps()
}

func (display *Window) setElapsed(elapsed time.Duration) {
	text := stopwatch.Format(elapsed)
	if display.readout.Text == text {
		return
	}
	display.readout.Text = text
	display.readout.Refresh()
}

func (display *Window) applyControls(controls stopwatch.Controls) {
	display.controls = controls
	setEnabled(display.startButton, controls.Start)
	setEnabled(display.stopButton, controls.Stop)
	setEnabled(display.resetButton, controls.Reset)
	setEnabled(display.lapButton, controls.Lap)
	setEnabled(display.clearButton, controls.ClearLaps)
}

func (display *Window) refreshLaps() {
	display.laps = display.engine.Laps().All()
	display.lapList.Refresh()
	if len(display.laps) > 0 {
		display.lapList.ScrollToBottom()
	}
}

func (display *Window) foregroundColor() color.Color {
	settings := display.app.Settings()
	return settings.Theme().Color(fynetheme.ColorNameForeground, settings.ThemeVariant())
}

func (display *Window) readoutSize() float32 {
	if size := display.app.Settings().Theme().Size(uitheme.SizeNameReadout); size > 0 {
		return size
	}
	return defaultReadoutSize
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
