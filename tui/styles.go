package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/studytimer/timer"
)

const (
	padding  = 2
	maxWidth = 80
)

var (
	workColor       = lipgloss.Color("#2E86AB")
	shortBreakColor = lipgloss.Color("#4CAF50")
	longBreakColor  = lipgloss.Color("#A23B72")
	warningColor    = lipgloss.Color("#FF9800")
	dangerColor     = lipgloss.Color("#F44336")
	hintColor       = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	flash     lipgloss.Style
	err       lipgloss.Style
	card      lipgloss.Style
	heading   lipgloss.Style
	phases    map[timer.Phase]lipgloss.Style
}

func defaultStyles() styles {
	phase := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Foreground(warningColor),
		hint:      lipgloss.NewStyle().Foreground(hintColor),
		flash:     lipgloss.NewStyle().Foreground(shortBreakColor),
		err:       lipgloss.NewStyle().Foreground(dangerColor),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hintColor).
			Padding(0, padding).
			Align(lipgloss.Center),
		heading: lipgloss.NewStyle().Bold(true).Foreground(workColor).MarginTop(1),
		phases: map[timer.Phase]lipgloss.Style{
			timer.Work:       phase(workColor),
			timer.ShortBreak: phase(shortBreakColor),
			timer.LongBreak:  phase(longBreakColor),
		},
	}
}
