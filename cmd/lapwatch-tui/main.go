package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"lapwatch/internal/core/model"
	"lapwatch/internal/core/stopwatch"
	"lapwatch/internal/logging"
	"lapwatch/internal/platform"
	"lapwatch/internal/storage"
	"lapwatch/internal/ui/terminal"
)

const appName = "Lapwatch"

func main() {
	exitCode := mainWithExitCode()
	os.Exit(exitCode)
}

func mainWithExitCode() int {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lapwatch-tui - terminal stopwatch with laps\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  lapwatch-tui [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  LAPWATCH_DEBUG        Enable debug logging (creates lapwatch-tui.debug.log)\n")
	}
	themeFlag := flag.String("theme", "", "override the saved theme (light or dark)")
	flag.Parse()

	// Enable debug logging if LAPWATCH_DEBUG env var is set.
	var writer io.Writer = io.Discard
	level := ""
	if os.Getenv("LAPWATCH_DEBUG") != "" {
		loggerFile, err := os.OpenFile("lapwatch-tui.debug.log", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Println("fatal:", err)
			return 1
		}
		writer = loggerFile
		level = "debug"
		defer func() {
			_ = loggerFile.Close()
		}()
	}

	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	guard, err := platform.AcquireSingleInstance(platform.SessionKey(appName, configDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		_ = guard.Release()
	}()
	store := storage.NewSettingsStore(afero.NewOsFs(), configDir, appName)
	settings, loadErr := store.Load()

	if level == "" {
		level = settings.LogLevel
	}
	if err := logging.Configure(writer, level); err != nil {
		log.WithError(err).Warn("invalid log level")
	}
	if loadErr != nil {
		log.WithError(loadErr).WithField("path", store.Path()).Warn("load settings, using defaults")
	}

	if *themeFlag != "" {
		theme, err := model.ParseTheme(*themeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings.Theme = theme
	}

	engine := stopwatch.New(settings.StopwatchConfig(), stopwatch.Config{})
	defer engine.Close()

	m := terminal.NewModel(engine, terminal.Options{
		Theme:          settings.Theme,
		SampleInterval: settings.SampleInterval,
		OnThemeChange: func(theme model.Theme) {
			settings.Theme = theme
			if err := store.Save(settings); err != nil {
				log.WithError(err).WithField("path", store.Path()).Error("save settings")
				return
			}
			log.WithField("theme", theme).Info("theme changed")
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("terminal program")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log.WithField("elapsed", stopwatch.Format(engine.Elapsed())).Info("exit")
	return 0
}
