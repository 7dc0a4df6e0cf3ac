package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapwatch/internal/core/stopwatch"
	"lapwatch/resources"
)

func TestManager_StatusAndControls(t *testing.T) {
	manager := New(nil, Callbacks{})

	assert.Equal(t, "Elapsed: 00:00:00 (stopped)", manager.statusItem.Label)
	assert.False(t, manager.runItem.Disabled)
	assert.True(t, manager.lapItem.Disabled)
	assert.True(t, manager.resetItem.Disabled)

	manager.SetRunning(true)
	manager.SetStatus("00:00:05")
	manager.SetControls(stopwatch.Controls{Stop: true, Reset: true, Lap: true})

	assert.Equal(t, "Stop", manager.runItem.Label)
	assert.Equal(t, "Elapsed: 00:00:05", manager.statusItem.Label)
	assert.False(t, manager.lapItem.Disabled)
	assert.False(t, manager.resetItem.Disabled)
}

func TestManager_MenuInvokesCallbacks(t *testing.T) {
	var calls []string
	manager := New(nil, Callbacks{
		OnToggleRun: func() { calls = append(calls, "run") },
		OnQuit:      func() { calls = append(calls, "quit") },
	})

	menu := manager.Menu()
	require.NotEmpty(t, menu.Items)

	for _, item := range menu.Items {
		if item.Action != nil && (item.Label == "Start" || item.Label == "Quit" || item.Label == "Show") {
			item.Action()
		}
	}

	assert.Equal(t, []string{"run", "quit"}, calls)
}

func TestManager_IconFollowsRunState(t *testing.T) {
	manager := New(nil, Callbacks{})
	assert.Equal(t, resources.IconIdle, manager.Icon().Name())

	manager.SetRunning(true)
	assert.Equal(t, resources.IconRunning, manager.Icon().Name())

	manager.SetRunning(false)
	assert.Equal(t, resources.IconIdle, manager.Icon().Name())
}
