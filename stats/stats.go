// Package stats builds and prints the session statistics shown by the stats
// command and the dashboard
package stats

import (
	"slices"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
	"github.com/ayoisaiah/studytimer/sessionlog"
)

// DistributionWindow is the number of recent records the distribution is
// computed over.
const DistributionWindow = 50

// Source is the part of the session log that statistics are derived from.
type Source interface {
	StatsForDay(day time.Time) sessionlog.TodayStats
	StatsForWeek(day time.Time) sessionlog.WeekStats
	RecentHistory(limit int) []session.Record
}

// Report bundles the figures for a reference day.
type Report struct {
	Date         time.Time             `json:"date"`
	Distribution map[session.Kind]int  `json:"distribution"`
	Week         sessionlog.WeekStats  `json:"week"`
	Today        sessionlog.TodayStats `json:"today"`
}

// DayTotal is the focus time of one day of the week.
type DayTotal struct {
	Date    time.Time
	Minutes int
}

// Build computes the report for day.
func Build(src Source, day time.Time) *Report {
	return &Report{
		Date:         day,
		Today:        src.StatsForDay(day),
		Week:         src.StatsForWeek(day),
		Distribution: Distribution(src.RecentHistory(DistributionWindow)),
	}
}

// Distribution counts records per session kind. Every kind is present in
// the result.
func Distribution(records []session.Record) map[session.Kind]int {
	m := make(map[session.Kind]int, len(session.Kinds))

	for _, k := range session.Kinds {
		m[k] = 0
	}

	for i := range records {
		m[records[i].Kind]++
	}

	return m
}

// WeekBars returns the focus minutes for every day of the week, Monday
// first, including days without sessions.
func WeekBars(week sessionlog.WeekStats) []DayTotal {
	days := timeutil.WeekDays(week.Start)

	bars := make([]DayTotal, len(days))
	for i, d := range days {
		bars[i] = DayTotal{
			Date:    d,
			Minutes: week.DailyFocus[timeutil.DateKey(d)],
		}
	}

	return bars
}

// ActiveDays returns the dates with focus time in ascending order.
func ActiveDays(week sessionlog.WeekStats) []string {
	keys := make([]string, 0, len(week.DailyFocus))

	for k, v := range week.DailyFocus {
		if v > 0 {
			keys = append(keys, k)
		}
	}

	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return keys
}

// BestDay returns the date with the most focus time. The earliest date wins
// a tie. ok is false when the week has no focus time.
func BestDay(week sessionlog.WeekStats) (date string, minutes int, ok bool) {
	for _, k := range ActiveDays(week) {
		if v := week.DailyFocus[k]; v > minutes {
			date, minutes, ok = k, v, true
		}
	}

	return date, minutes, ok
}
