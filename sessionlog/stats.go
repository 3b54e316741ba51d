package sessionlog

import (
	"time"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
)

// DailyGoalMinutes is the amount of focus time that scores 100.
const DailyGoalMinutes = 120

// TodayStats summarises the current calendar day.
type TodayStats struct {
	TotalFocusMinutes   int     `json:"total_focus_minutes"`
	CompletedFocusCount int     `json:"completed_focus_count"`
	TotalSessionCount   int     `json:"total_session_count"`
	ProductivityScore   float64 `json:"productivity_score"`
}

// WeekStats summarises the Monday to Sunday week containing the reference
// day.
type WeekStats struct {
	Start               time.Time      `json:"week_start"`
	DailyFocus          map[string]int `json:"daily_focus"`
	TotalFocusMinutes   int            `json:"total_focus_minutes"`
	AverageDailyMinutes float64        `json:"average_daily_minutes"`
}

// recordDate returns the YYYY-MM-DD date of a record, falling back to its
// timestamp for records written without one.
func recordDate(r *session.Record) string {
	if r.Date != "" || r.Timestamp.IsZero() {
		return r.Date
	}

	return timeutil.DateKey(r.Timestamp.Time)
}

// StatsForToday reports the figures for the current day.
func (l *Log) StatsForToday() TodayStats {
	return l.StatsForDay(l.now())
}

// StatsForDay reports the figures for the calendar day containing day.
// Skipped focus sessions count toward the session total but not toward
// completed focus sessions.
func (l *Log) StatsForDay(day time.Time) TodayStats {
	key := timeutil.DateKey(day)

	var s TodayStats

	for i := range l.file.Sessions {
		r := &l.file.Sessions[i]

		if recordDate(r) != key {
			continue
		}

		s.TotalSessionCount++

		if r.Kind != session.Focus {
			continue
		}

		s.TotalFocusMinutes += r.Duration

		if !r.Skipped() {
			s.CompletedFocusCount++
		}
	}

	s.ProductivityScore = min(
		100,
		100*float64(s.TotalFocusMinutes)/DailyGoalMinutes,
	)

	return s
}

// StatsForCurrentWeek reports the figures for the current week.
func (l *Log) StatsForCurrentWeek() WeekStats {
	return l.StatsForWeek(l.now())
}

// StatsForWeek reports the figures for the Monday to Sunday week containing
// day. The daily average always divides by seven.
func (l *Log) StatsForWeek(day time.Time) WeekStats {
	s := WeekStats{
		Start:      timeutil.WeekStart(day),
		DailyFocus: make(map[string]int),
	}

	inWeek := make(map[string]bool, timeutil.DaysInAWeek)
	for _, d := range timeutil.WeekDays(day) {
		inWeek[timeutil.DateKey(d)] = true
	}

	var weekRecords int

	for i := range l.file.Sessions {
		r := &l.file.Sessions[i]

		date := recordDate(r)
		if !inWeek[date] {
			continue
		}

		weekRecords++

		if r.Kind != session.Focus {
			continue
		}

		s.TotalFocusMinutes += r.Duration
		s.DailyFocus[date] += r.Duration
	}

	if weekRecords > 0 {
		s.AverageDailyMinutes = float64(s.TotalFocusMinutes) / timeutil.DaysInAWeek
	}

	return s
}
