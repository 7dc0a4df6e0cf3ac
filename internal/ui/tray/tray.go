package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"lapwatch/internal/core/stopwatch"
	"lapwatch/resources"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggleRun   func()
	OnLap         func()
	OnReset       func()
	OnToggleTheme func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	runItem     *fyne.MenuItem
	lapItem     *fyne.MenuItem
	resetItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "00:00:00",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.runItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggleRun))
	manager.lapItem = fyne.NewMenuItem("Lap", invoke(&manager.callbacks.OnLap))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset))

	manager.SetControls(stopwatch.Availability(stopwatch.Snapshot{}))
	manager.refreshIcon()
	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label. The menu is only rebuilt when the
// label changes.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning updates the start/stop item.
func (manager *Manager) SetRunning(running bool) {
	if running == manager.running {
		return
	}
	manager.running = running
	if running {
		manager.runItem.Label = "Stop"
	} else {
		manager.runItem.Label = "Start"
	}
	manager.refreshIcon()
	manager.refreshStatus()
}

// SetControls enables the items allowed in the current state.
func (manager *Manager) SetControls(controls stopwatch.Controls) {
	manager.runItem.Disabled = !controls.Start && !controls.Stop
	manager.lapItem.Disabled = !controls.Lap
	manager.resetItem.Disabled = !controls.Reset
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("Lapwatch",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.runItem,
		manager.lapItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Toggle theme", invoke(&manager.callbacks.OnToggleTheme)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if !manager.running {
		status = fmt.Sprintf("%s (stopped)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Elapsed: %s", status)
	manager.refreshMenu()
}

// Icon returns the tray icon for the current run state.
func (manager *Manager) Icon() fyne.Resource {
	if manager.running {
		return resources.MustIcon(resources.IconRunning)
	}
	return resources.MustIcon(resources.IconIdle)
}

func (manager *Manager) refreshIcon() {
	if manager.app != nil {
		manager.app.SetSystemTrayIcon(manager.Icon())
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
