package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"lapwatch/internal/core/model"
)

// Palette holds the colors of one theme.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Running    lipgloss.Color
	Stopped    lipgloss.Color
	Border     lipgloss.Color
}

var (
	darkPalette = Palette{
		Foreground: lipgloss.Color("#E6E6E6"),
		Muted:      lipgloss.Color("#5C5C5C"),
		Accent:     lipgloss.Color("#E8BE42"),
		Running:    lipgloss.Color("#5FD787"),
		Stopped:    lipgloss.Color("#FF875F"),
		Border:     lipgloss.Color("#444444"),
	}
	lightPalette = Palette{
		Foreground: lipgloss.Color("#1C1C1C"),
		Muted:      lipgloss.Color("#A8A8A8"),
		Accent:     lipgloss.Color("#AF5F00"),
		Running:    lipgloss.Color("#008700"),
		Stopped:    lipgloss.Color("#D70000"),
		Border:     lipgloss.Color("#BCBCBC"),
	}
)

// Styles are the rendered styles of one theme.
type Styles struct {
	Frame       lipgloss.Style
	Readout     lipgloss.Style
	Running     lipgloss.Style
	Stopped     lipgloss.Style
	KeyEnabled  lipgloss.Style
	KeyDisabled lipgloss.Style
	LapIndex    lipgloss.Style
	LapTotal    lipgloss.Style
	LapDelta    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(theme model.Theme) Styles {
	palette := lightPalette
	if theme.IsDark() {
		palette = darkPalette
	}

	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Border).
			Padding(1, 3),
		Readout: lipgloss.NewStyle().
			Foreground(palette.Accent).
			Bold(true),
		Running:     lipgloss.NewStyle().Foreground(palette.Running).Bold(true),
		Stopped:     lipgloss.NewStyle().Foreground(palette.Stopped).Bold(true),
		KeyEnabled:  lipgloss.NewStyle().Foreground(palette.Foreground),
		KeyDisabled: lipgloss.NewStyle().Foreground(palette.Muted).Strikethrough(true),
		LapIndex:    lipgloss.NewStyle().Foreground(palette.Muted).Width(6),
		LapTotal:    lipgloss.NewStyle().Foreground(palette.Foreground).Width(14),
		LapDelta:    lipgloss.NewStyle().Foreground(palette.Accent),
		Help:        lipgloss.NewStyle().Foreground(palette.Muted).Italic(true),
	}
}
