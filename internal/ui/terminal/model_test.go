package terminal_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapwatch/internal/core/model"
	"lapwatch/internal/core/stopwatch"
	"lapwatch/internal/ui/terminal"
)

type steppedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *steppedClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *steppedClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	clock.mu.Unlock()
}

func (clock *steppedClock) NewTicker(time.Duration) stopwatch.Ticker {
	return idleTicker{}
}

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

func newTestModel(t *testing.T, options terminal.Options) (*terminal.Model, *stopwatch.Engine, *steppedClock) {
	t.Helper()
	clock := &steppedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	engine := stopwatch.New(model.StopwatchConfig{}, stopwatch.Config{Clock: clock})
	t.Cleanup(engine.Close)
	return terminal.NewModel(engine, options), engine, clock
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_InitWhileStoppedDoesNotPoll(t *testing.T) {
	m, _, _ := newTestModel(t, terminal.Options{})

	assert.Nil(t, m.Init())
}

func TestModel_StartStopLapReset(t *testing.T) {
	m, engine, clock := newTestModel(t, terminal.Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, engine.Running())
	assert.NotNil(t, cmd, "start schedules the render tick")

	_, cmd = m.Update(key('s'))
	assert.False(t, engine.Running(), "second toggle stops")
	assert.Nil(t, cmd)

	_, cmd = m.Update(key('s'))
	require.True(t, engine.Running())
	assert.Nil(t, cmd, "a tick from the earlier run is still pending")

	clock.Advance(1500 * time.Millisecond)
	m.Update(key('l'))
	clock.Advance(2200 * time.Millisecond)
	m.Update(key('l'))

	laps := engine.Laps().All()
	require.Len(t, laps, 2)
	assert.Equal(t, 2200*time.Millisecond, laps[1].Delta)

	view := m.View()
	assert.Contains(t, view, "00:00:03.70")
	assert.Contains(t, view, "#2")
	assert.Contains(t, view, "+00:00:02.20")
	assert.Contains(t, view, "RUNNING")

	m.Update(key('r'))
	assert.False(t, engine.Running())
	assert.Zero(t, engine.Elapsed())
	assert.NotContains(t, m.View(), "#1")
}

func TestModel_LapBlockedWhileStopped(t *testing.T) {
	m, engine, _ := newTestModel(t, terminal.Options{})

	m.Update(key('l'))

	assert.Zero(t, engine.Laps().Len())
	assert.Contains(t, m.View(), "STOPPED")
}

func TestModel_ToggleTheme(t *testing.T) {
	var changes []model.Theme
	m, _, _ := newTestModel(t, terminal.Options{
		Theme:         model.ThemeLight,
		OnThemeChange: func(theme model.Theme) { changes = append(changes, theme) },
	})

	m.Update(key('t'))
	m.Update(key('t'))

	assert.Equal(t, []model.Theme{model.ThemeDark, model.ThemeLight}, changes)
	assert.Equal(t, model.ThemeLight, m.Theme())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, terminal.Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ViewLimitsLaps(t *testing.T) {
	m, engine, clock := newTestModel(t, terminal.Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 16})

	m.Update(key('s'))
	for i := 0; i < 12; i++ {
		clock.Advance(time.Second)
		m.Update(key('l'))
	}
	require.Equal(t, 12, engine.Laps().Len())

	view := m.View()
	assert.Contains(t, view, "7 earlier laps")
	assert.Contains(t, view, "#12")
	assert.False(t, strings.Contains(view, "#7 "), "older laps are hidden")
}
