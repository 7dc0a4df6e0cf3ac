package terminal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"lapwatch/internal/core/model"
	"lapwatch/internal/core/stopwatch"
)

func TestModel_TickStopsWhenEngineStops(t *testing.T) {
	engine := stopwatch.New(model.StopwatchConfig{}, stopwatch.Config{})
	defer engine.Close()
	m := NewModel(engine, Options{SampleInterval: 5 * time.Millisecond})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.NotNil(t, cmd)
	assert.True(t, m.polling)

	_, cmd = m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd, "running engine keeps polling")

	engine.Stop()
	_, cmd = m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.False(t, m.polling)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.NotNil(t, cmd, "polling restarts after the loop ended")
}

func TestModel_TickCommandProducesTickMsg(t *testing.T) {
	engine := stopwatch.New(model.StopwatchConfig{}, stopwatch.Config{})
	defer engine.Close()
	m := NewModel(engine, Options{SampleInterval: time.Millisecond})

	msg := m.tick()()

	assert.IsType(t, tickMsg{}, msg)
}

func TestBuildKeyMap(t *testing.T) {
	keyMap := buildKeyMap(KeyBindings())

	for _, key := range []string{" ", "space", "s", "l", "r", "c", "t", "q", "ctrl+c"} {
		_, ok := keyMap[key]
		assert.True(t, ok, "missing binding for %q", key)
	}
	assert.Equal(t, "space", displayKey(" "))
}
