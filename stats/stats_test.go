package stats

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/sessionlog"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

type fakeSource struct {
	today   sessionlog.TodayStats
	week    sessionlog.WeekStats
	records []session.Record
	limit   int
}

func (f *fakeSource) StatsForDay(time.Time) sessionlog.TodayStats { return f.today }

func (f *fakeSource) StatsForWeek(time.Time) sessionlog.WeekStats { return f.week }

func (f *fakeSource) RecentHistory(limit int) []session.Record {
	f.limit = limit
	return f.records
}

func sampleWeek() sessionlog.WeekStats {
	return sessionlog.WeekStats{
		Start:             monday,
		TotalFocusMinutes: 100,
		DailyFocus: map[string]int{
			"2025-03-12": 30,
			"2025-03-10": 45,
			"2025-03-14": 25,
		},
		AverageDailyMinutes: 100.0 / 7,
	}
}

func TestDistribution(t *testing.T) {
	records := []session.Record{
		{Kind: session.Focus},
		{Kind: session.ShortBreak},
		{Kind: session.Focus},
		{Kind: session.Focus, Notes: session.SkippedNote},
	}

	expected := map[session.Kind]int{
		session.Focus:      3,
		session.ShortBreak: 1,
		session.LongBreak:  0,
	}

	if diff := cmp.Diff(expected, Distribution(records)); diff != "" {
		t.Fatalf("Distribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeekBars(t *testing.T) {
	bars := WeekBars(sampleWeek())

	require.Len(t, bars, 7)
	assert.Equal(t, time.Monday, bars[0].Date.Weekday())
	assert.Equal(t, 45, bars[0].Minutes)
	assert.Equal(t, 0, bars[1].Minutes)
	assert.Equal(t, 30, bars[2].Minutes)
	assert.Equal(t, 25, bars[4].Minutes)
	assert.Equal(t, time.Sunday, bars[6].Date.Weekday())
}

func TestActiveDaysAndBestDay(t *testing.T) {
	week := sampleWeek()
	week.DailyFocus["2025-03-11"] = 0

	assert.Equal(t, []string{"2025-03-10", "2025-03-12", "2025-03-14"}, ActiveDays(week))

	date, mins, ok := BestDay(week)
	assert.True(t, ok)
	assert.Equal(t, "2025-03-10", date)
	assert.Equal(t, 45, mins)

	week.DailyFocus["2025-03-12"] = 45

	date, _, _ = BestDay(week)
	assert.Equal(t, "2025-03-10", date, "earliest date wins a tie")

	_, _, ok = BestDay(sessionlog.WeekStats{Start: monday})
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	src := &fakeSource{
		today:   sessionlog.TodayStats{TotalFocusMinutes: 55},
		week:    sampleWeek(),
		records: []session.Record{{Kind: session.LongBreak}},
	}

	r := Build(src, monday)

	assert.Equal(t, DistributionWindow, src.limit)
	assert.Equal(t, 55, r.Today.TotalFocusMinutes)
	assert.Equal(t, 1, r.Distribution[session.LongBreak])
	assert.Equal(t, monday, r.Date)
}

func TestRender(t *testing.T) {
	r := &Report{
		Date: monday.Add(10 * time.Hour),
		Today: sessionlog.TodayStats{
			TotalFocusMinutes:   55,
			CompletedFocusCount: 2,
			TotalSessionCount:   3,
			ProductivityScore:   45.83,
		},
		Week: sampleWeek(),
		Distribution: map[session.Kind]int{
			session.Focus:      3,
			session.ShortBreak: 1,
		},
	}

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, r))

	out := buf.String()

	for _, want := range []string{
		"Statistics for Monday, March 10, 2025",
		"Focus time: 55m",
		"Focus sessions: 2",
		"Productivity: 46%",
		"Focus time: 1h 40m",
		"Daily average: 14m",
		"Best day: Mon, Mar 10 (45m)",
		"Focus: 3 (75%)",
		"Long Break: 0 (0%)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderWithoutSessions(t *testing.T) {
	r := &Report{
		Date:         monday,
		Week:         sessionlog.WeekStats{Start: monday, DailyFocus: map[string]int{}},
		Distribution: Distribution(nil),
	}

	var buf bytes.Buffer

	require.NoError(t, Render(&buf, r))
	assert.Contains(t, buf.String(), noSessionsMsg)
	assert.NotContains(t, buf.String(), "Best day")
}

func TestHistoryRows(t *testing.T) {
	records := []session.Record{
		{ID: 1, Date: "2025-03-10", StartTime: "09:00:00", Kind: session.Focus, Duration: 25, Completed: true},
		{ID: 2, Date: "2025-03-10", StartTime: "09:30:00", Kind: session.Focus, Notes: session.SkippedNote},
	}

	rows := HistoryRows(records)

	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0][0])
	assert.Equal(t, "Skipped", rows[0][6])
	assert.Equal(t, "incomplete", rows[0][5])
	assert.Equal(t, "25 min", rows[1][4])
	assert.Equal(t, "Focus", rows[1][3])
	assert.Equal(t, "Long Break", kindLabel(session.LongBreak))
	assert.Equal(t, "nap", kindLabel(session.Kind("nap")))

	var buf bytes.Buffer

	require.NoError(t, PrintHistory(&buf, records))
	assert.Less(t, strings.Index(buf.String(), "09:30:00"), strings.Index(buf.String(), "09:00:00"))
}
