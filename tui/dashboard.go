package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
	"github.com/ayoisaiah/studytimer/stats"
	"github.com/ayoisaiah/studytimer/timer"
)

const (
	recentSessions = 10
	barWidth       = 30
	barChar        = "▇"
)

func (m *Model) todayCards(r *stats.Report) string {
	card := func(value, label string) string {
		return m.styles.card.Render(
			m.styles.main.Render(value) + "\n" + m.styles.hint.Render(label),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card(timeutil.FormatMinutes(r.Today.TotalFocusMinutes), "Total Focus"),
		card(fmt.Sprintf("%d", r.Today.CompletedFocusCount), "Sessions"),
		card(fmt.Sprintf("%.0f%%", r.Today.ProductivityScore), "Productivity"),
	)
}

func (m *Model) weekChart(r *stats.Report) string {
	days := stats.WeekBars(r.Week)

	var peak int
	for _, d := range days {
		peak = max(peak, d.Minutes)
	}

	var s strings.Builder

	for _, d := range days {
		width := 0
		if peak > 0 {
			width = d.Minutes * barWidth / peak
		}

		s.WriteString(fmt.Sprintf(
			"%s %s %s\n",
			d.Date.Format("Mon"),
			m.styles.phases[timer.Work].Render(strings.Repeat(barChar, width)),
			m.styles.hint.Render(fmt.Sprintf("%dm", d.Minutes)),
		))
	}

	s.WriteString(m.styles.hint.Render(fmt.Sprintf(
		"Total %s · Daily average %s",
		timeutil.FormatMinutes(r.Week.TotalFocusMinutes),
		timeutil.FormatMinutes(timeutil.Round(r.Week.AverageDailyMinutes)),
	)))

	return s.String()
}

func (m *Model) distribution(r *stats.Report) string {
	parts := make([]string, 0, len(session.Kinds))

	for _, k := range session.Kinds {
		parts = append(parts, fmt.Sprintf("%s: %d", k.Label(), r.Distribution[k]))
	}

	return strings.Join(parts, "  ")
}

func (m *Model) recent() string {
	records := m.deps.Log.RecentHistory(recentSessions)
	if len(records) == 0 {
		return m.styles.hint.Render("No sessions recorded yet")
	}

	rows := stats.HistoryRows(records)

	var s strings.Builder

	for _, row := range rows {
		// date, start, type, duration, notes
		s.WriteString(fmt.Sprintf("%s %s  %-11s %7s  %s\n", row[1], row[2], row[3], row[4], row[6]))
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) dashboardView() string {
	r := stats.Build(m.deps.Log, m.deps.Now())

	sections := []string{
		m.styles.heading.Render("Today's Summary"),
		m.todayCards(r),
		m.styles.heading.Render("Weekly Focus Time"),
		m.weekChart(r),
		m.styles.heading.Render("Session Distribution"),
		m.distribution(r),
		m.styles.heading.Render("Recent Sessions"),
		m.recent(),
		m.help.ShortHelpView([]key.Binding{
			defaultKeymap.dashboard,
			defaultKeymap.togglePlay,
			defaultKeymap.quit,
		}),
	}

	return strings.Join(sections, "\n")
}
