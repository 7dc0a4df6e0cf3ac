package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"lapwatch/internal/core/stopwatch"
)

// KeyBinding maps keys to a model action.
//
// Allowed reports whether the action is currently permitted; nil means
// always allowed.
type KeyBinding struct {
	Keys        []string
	Description string
	Allowed     func(stopwatch.Controls) bool
	Handler     func(*Model) tea.Cmd
}

// KeyBindings returns the stopwatch key bindings in help order.
func KeyBindings() []KeyBinding {
	return []KeyBinding{
		{
			Keys:        []string{" ", "space", "s"},
			Description: "start/stop",
			Allowed: func(controls stopwatch.Controls) bool {
				return controls.Start || controls.Stop
			},
			Handler: (*Model).handleToggleRun,
		},
		{
			Keys:        []string{"l"},
			Description: "lap",
			Allowed:     func(controls stopwatch.Controls) bool { return controls.Lap },
			Handler:     (*Model).handleLap,
		},
		{
			Keys:        []string{"r"},
			Description: "reset",
			Allowed:     func(controls stopwatch.Controls) bool { return controls.Reset },
			Handler:     (*Model).handleReset,
		},
		{
			Keys:        []string{"c"},
			Description: "clear laps",
			Allowed:     func(controls stopwatch.Controls) bool { return controls.ClearLaps },
			Handler:     (*Model).handleClearLaps,
		},
		{
			Keys:        []string{"t"},
			Description: "theme",
			Handler:     (*Model).handleToggleTheme,
		},
		{
			Keys:        []string{"q", "ctrl+c"},
			Description: "quit",
			Handler:     (*Model).handleQuit,
		},
	}
}

func buildKeyMap(bindings []KeyBinding) map[string]KeyBinding {
	keyMap := make(map[string]KeyBinding)
	for _, binding := range bindings {
		for _, key := range binding.Keys {
			keyMap[key] = binding
		}
	}
	return keyMap
}
