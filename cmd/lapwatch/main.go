package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"lapwatch/internal/core/stopwatch"
	"lapwatch/internal/logging"
	"lapwatch/internal/platform"
	"lapwatch/internal/storage"
	"lapwatch/internal/ui/preferences"
	uitheme "lapwatch/internal/ui/theme"
	"lapwatch/internal/ui/tray"
	"lapwatch/internal/ui/window"
	"lapwatch/resources"
)

const appName = "Lapwatch"

func main() {
	configDir := resolveConfigDir()
	guard, err := platform.AcquireSingleInstance(platform.SessionKey(appName, configDir))
	if err != nil {
		log.WithError(err).Warn("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	store := storage.NewSettingsStore(afero.NewOsFs(), configDir, appName)
	settings, err := store.Load()
	if err != nil {
		log.WithError(err).WithField("path", store.Path()).Warn("load settings, using defaults")
	}
	if err := logging.Configure(os.Stderr, settings.LogLevel); err != nil {
		log.WithError(err).Warn("invalid log level")
	}

	fyneApp := app.NewWithID("com.lapwatch.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))
	uitheme.Apply(fyneApp, settings.Theme)

	engine := stopwatch.New(settings.StopwatchConfig(), stopwatch.Config{})
	defer engine.Close()

	var mainWindow *window.Window
	var prefsWindow *preferences.Window

	applySettings := func(updated preferences.Settings) {
		themeChanged := updated.Theme != settings.Theme
		settings = updated
		engine.UpdateConfig(settings.StopwatchConfig())
		if err := logging.Configure(os.Stderr, settings.LogLevel); err != nil {
			log.WithError(err).Warn("invalid log level")
		}
		if themeChanged {
			uitheme.Apply(fyneApp, settings.Theme)
			mainWindow.ApplyTheme(settings.Theme)
			log.WithField("theme", settings.Theme).Info("theme changed")
		}
		prefsWindow.UpdateSettings(settings)
		saveSettings(store, settings)
	}

	toggleTheme := func() {
		applySettings(settings.WithToggledTheme())
	}

	mainWindow = window.New(fyneApp, engine, window.Config{
		Title:  appName,
		Width:  settings.WindowWidth,
		Height: settings.WindowHeight,
		Theme:  settings.Theme,
	}, window.Callbacks{
		OnToggleTheme: toggleTheme,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})
	prefsWindow = preferences.New(fyneApp, settings, applySettings)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnToggleRun:   mainWindow.ToggleRun,
			OnLap:         mainWindow.Lap,
			OnReset:       mainWindow.Reset,
			OnToggleTheme: toggleTheme,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Info("system tray unsupported on this platform")
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			logEvent(event)
			fyne.Do(func() {
				mainWindow.HandleEvent(event)
				if trayManager != nil {
					trayManager.SetRunning(event.State == stopwatch.StateRunning)
					trayManager.SetControls(event.Controls)
					trayManager.SetStatus(trayStatus(event))
				}
			})
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
}

func resolveConfigDir() string {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		log.WithError(err).Warn("resolve config dir, using working directory")
		return "."
	}
	return configDir
}

func saveSettings(store *storage.SettingsStore, settings preferences.Settings) {
	if err := store.Save(settings); err != nil {
		log.WithError(err).WithField("path", store.Path()).Error("save settings")
	}
}

func logEvent(event stopwatch.Event) {
	if event.Type == stopwatch.EventTick {
		return
	}
	entry := log.WithFields(log.Fields{
		"event":   event.Type,
		"state":   event.State,
		"elapsed": stopwatch.Format(event.Elapsed),
		"laps":    event.LapCount,
	})
	if event.Type == stopwatch.EventLap {
		entry = entry.WithField("delta", stopwatch.FormatDelta(event.Lap.Delta))
	}
	entry.Info("stopwatch")
}

// trayStatus renders elapsed time at second resolution so the tray menu is
// rebuilt at most once per second.
func trayStatus(event stopwatch.Event) string {
	readout := stopwatch.Split(event.Elapsed)
	return fmt.Sprintf("%02d:%02d:%02d", readout.Hours, readout.Minutes, readout.Seconds)
}
