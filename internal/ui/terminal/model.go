// Package terminal implements the Bubble Tea front end of the stopwatch.
package terminal

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"lapwatch/internal/core/model"
	"lapwatch/internal/core/stopwatch"
)

// minVisibleLaps is the lap count shown before the window size is known.
const minVisibleLaps = 5

// Options configures a terminal Model.
type Options struct {
	Theme          model.Theme
	SampleInterval time.Duration
	// OnThemeChange is called after the user toggles the theme.
	OnThemeChange func(model.Theme)
}

type tickMsg time.Time

// Model is the Bubble Tea model that renders an Engine.
//
// It polls Engine.Elapsed at the sample interval while the engine runs.
type Model struct {
	engine        *stopwatch.Engine
	interval      time.Duration
	theme         model.Theme
	styles        Styles
	onThemeChange func(model.Theme)
	bindings      []KeyBinding
	keyMap        map[string]KeyBinding
	polling       bool
	quitting      bool
	width         int
	height        int
}

// NewModel creates a Model for the engine.
func NewModel(engine *stopwatch.Engine, options Options) *Model {
	if options.SampleInterval <= 0 {
		options.SampleInterval = model.DefaultSampleInterval
	}
	if options.Theme == "" {
		options.Theme = model.ThemeDark
	}

	bindings := KeyBindings()
	return &Model{
		engine:        engine,
		interval:      options.SampleInterval,
		theme:         options.Theme,
		styles:        NewStyles(options.Theme),
		onThemeChange: options.OnThemeChange,
		bindings:      bindings,
		keyMap:        buildKeyMap(bindings),
	}
}

// Theme returns the active theme.
func (m *Model) Theme() model.Theme {
	return m.theme
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.ensurePolling()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if !m.engine.Running() {
			m.polling = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snapshot := m.engine.Snapshot()
	controls := stopwatch.Availability(snapshot)

	state := m.styles.Stopped.Render("STOPPED")
	if snapshot.Running {
		state = m.styles.Running.Render("RUNNING")
	}

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Readout.Render(stopwatch.Format(snapshot.Elapsed)), "  ", state),
		"",
		m.renderControls(controls),
	}
	if laps := m.renderLaps(); laps != "" {
		sections = append(sections, "", laps)
	}

	return m.styles.Frame.Render(strings.Join(sections, "\n"))
}

func (m *Model) renderControls(controls stopwatch.Controls) string {
	hints := make([]string, 0, len(m.bindings))
	for _, binding := range m.bindings {
		label := fmt.Sprintf("[%s] %s", displayKey(binding.Keys[0]), binding.Description)
		if binding.Allowed != nil && !binding.Allowed(controls) {
			hints = append(hints, m.styles.KeyDisabled.Render(label))
			continue
		}
		hints = append(hints, m.styles.KeyEnabled.Render(label))
	}
	return strings.Join(hints, "  ")
}

func (m *Model) renderLaps() string {
	laps := m.engine.Laps().All()
	if len(laps) == 0 {
		return ""
	}

	visible := m.visibleLaps()
	hidden := 0
	if len(laps) > visible {
		hidden = len(laps) - visible
		laps = laps[hidden:]
	}

	lines := make([]string, 0, len(laps)+1)
	if hidden > 0 {
		lines = append(lines, m.styles.Help.Render(fmt.Sprintf("… %d earlier laps", hidden)))
	}
	for _, lap := range laps {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.LapIndex.Render(lap.Label()),
			m.styles.LapTotal.Render(stopwatch.Format(lap.Total)),
			m.styles.LapDelta.Render(stopwatch.FormatDelta(lap.Delta)),
		))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) visibleLaps() int {
	// Frame, readout, controls and spacing take eleven rows.
	if rows := m.height - 11; rows > minVisibleLaps {
		return rows
	}
	return minVisibleLaps
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	binding, ok := m.keyMap[msg.String()]
	if !ok || binding.Handler == nil {
		return nil
	}
	if binding.Allowed != nil && !binding.Allowed(m.engine.Controls()) {
		return nil
	}
	return binding.Handler(m)
}

func (m *Model) handleToggleRun() tea.Cmd {
	if m.engine.Running() {
		m.engine.Stop()
		log.WithField("elapsed", stopwatch.Format(m.engine.Elapsed())).Debug("terminal: stopped")
		return nil
	}
	m.engine.Start()
	log.Debug("terminal: started")
	return m.ensurePolling()
}

func (m *Model) handleLap() tea.Cmd {
	lap := m.engine.Lap()
	log.WithFields(log.Fields{
		"lap":   lap.Number,
		"total": stopwatch.Format(lap.Total),
		"delta": stopwatch.FormatDelta(lap.Delta),
	}).Debug("terminal: lap recorded")
	return nil
}

func (m *Model) handleReset() tea.Cmd {
	m.engine.Reset()
	log.Debug("terminal: reset")
	return nil
}

func (m *Model) handleClearLaps() tea.Cmd {
	m.engine.ClearLaps()
	return nil
}

func (m *Model) handleToggleTheme() tea.Cmd {
	m.theme = m.theme.Toggle()
	m.styles = NewStyles(m.theme)
	if m.onThemeChange != nil {
		m.onThemeChange(m.theme)
	}
	return nil
}

func (m *Model) handleQuit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// ensurePolling starts the tick loop unless one is already pending.
func (m *Model) ensurePolling() tea.Cmd {
	if m.polling || !m.engine.Running() {
		return nil
	}
	m.polling = true
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
