package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdeck-cli/internal/model"
)

// Theme helpers. The TUI must stay readable on light and dark terminal
// backgrounds, so everything routes through lipgloss.AdaptiveColor; "faint"
// styling is applied only on dark backgrounds (faint on light terminals is
// often illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")

	colorOK     lipgloss.TerminalColor = ac("28", "40")   // green
	colorWarn   lipgloss.TerminalColor = ac("130", "214") // orange
	colorDanger lipgloss.TerminalColor = ac("124", "203") // red
	colorInfo   lipgloss.TerminalColor = ac("27", "75")   // blue
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted)
	toastStyle  = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCardBorder).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)

	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).
			Background(colorAccent).
			Foreground(colorAccentFg).
			Bold(true)
)

// hasTrueColor gates the entity color swatches: hex colors from the data
// model render only where the terminal supports them.
var hasTrueColor = termenv.ColorProfile() == termenv.TrueColor

// entityColor maps a stored hex color token to a terminal color, degrading
// to the accent color when truecolor is unavailable.
func entityColor(hex string) lipgloss.TerminalColor {
	if hex == "" || !hasTrueColor {
		return colorAccent
	}
	return lipgloss.Color(hex)
}

func statusColor(s model.TaskStatus) lipgloss.TerminalColor {
	switch s {
	case model.StatusDone:
		return colorOK
	case model.StatusInProgress:
		return colorInfo
	default:
		return colorWarn
	}
}

func statusLabel(s model.TaskStatus) string {
	switch s {
	case model.StatusDone:
		return "done"
	case model.StatusInProgress:
		return "in progress"
	case model.StatusNotStarted:
		return "not started"
	default:
		return string(s)
	}
}

func priorityColor(p model.Priority) lipgloss.TerminalColor {
	switch p {
	case model.PriorityHigh:
		return colorDanger
	case model.PriorityMedium:
		return colorWarn
	default:
		return colorMuted
	}
}

func presenceColor(p model.Presence) lipgloss.TerminalColor {
	switch p {
	case model.PresenceOnline:
		return colorOK
	case model.PresenceAway:
		return colorWarn
	default:
		return colorMuted
	}
}
