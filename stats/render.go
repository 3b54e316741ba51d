package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
	"github.com/ayoisaiah/studytimer/internal/ui"
)

const barChartChar = "▇"

const noSessionsMsg = "No sessions recorded yet"

// Render writes the report as text.
func Render(w io.Writer, r *Report) error {
	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Statistics for %s", r.Date.Format("Monday, January 02, 2006"))

	chart, err := weekChart(r)
	if err != nil {
		return err
	}

	output := fmt.Sprint(
		header,
		todaySummary(r),
		weekSummary(r),
		chart,
		distribution(r),
	)

	_, err = fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}

func todaySummary(r *Report) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Today"))

	focus := fmt.Sprintln(
		"Focus time:",
		ui.Green(timeutil.FormatMinutes(r.Today.TotalFocusMinutes)),
	)

	completed := fmt.Sprintln(
		"Focus sessions:",
		ui.Green(r.Today.CompletedFocusCount),
	)

	total := fmt.Sprintln(
		"Total sessions:",
		ui.Green(r.Today.TotalSessionCount),
	)

	score := fmt.Sprintf(
		"Productivity: %s\n",
		ui.Green(fmt.Sprintf("%.0f%%", r.Today.ProductivityScore)),
	)

	return header + focus + completed + total + score
}

func weekSummary(r *Report) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("This week"))

	total := fmt.Sprintln(
		"Focus time:",
		ui.Green(timeutil.FormatMinutes(r.Week.TotalFocusMinutes)),
	)

	avg := fmt.Sprintln(
		"Daily average:",
		ui.Green(timeutil.FormatMinutes(timeutil.Round(r.Week.AverageDailyMinutes))),
	)

	best := ""

	if date, mins, ok := BestDay(r.Week); ok {
		label := date
		if d, err := time.ParseInLocation(timeutil.DateLayout, date, r.Date.Location()); err == nil {
			label = d.Format("Mon, Jan 02")
		}

		best = fmt.Sprintf(
			"Best day: %s (%s)\n",
			ui.Green(label),
			timeutil.FormatMinutes(mins),
		)
	}

	return header + total + avg + best
}

func weekChart(r *Report) (string, error) {
	header := ui.Blue("\nDaily focus (minutes)")

	days := WeekBars(r.Week)

	bars := make(pterm.Bars, 0, len(days))
	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Label: d.Date.Format("Mon"),
			Value: d.Minutes,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return "", fmt.Errorf("rendering bar chart: %w", err)
	}

	return header + chart, nil
}

func distribution(r *Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Recent sessions by type")))

	var total int
	for _, n := range r.Distribution {
		total += n
	}

	if total == 0 {
		b.WriteString(noSessionsMsg + "\n")
		return b.String()
	}

	for _, k := range session.Kinds {
		n := r.Distribution[k]

		b.WriteString(fmt.Sprintf(
			"%s: %s (%.0f%%)\n",
			kindLabel(k),
			ui.Green(n),
			100*float64(n)/float64(total),
		))
	}

	return b.String()
}
