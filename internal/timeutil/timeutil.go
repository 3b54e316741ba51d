// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
	DaysInAWeek      = 7
)

const (
	// DateLayout is the layout of the date field of a session record.
	DateLayout = "2006-01-02"
	// ClockLayout is the layout of the start time field of a session record.
	ClockLayout = "15:04:05"
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minutes value as "1h 05m" or "45m".
func FormatMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// FormatClock renders a number of seconds as a zero-padded "MM:SS" string.
// Negative values render as "00:00".
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}

	return fmt.Sprintf("%02d:%02d", secs/secondsInAMinute, secs%secondsInAMinute)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// WeekStart returns the start of the most recent Monday at or before t.
func WeekStart(t time.Time) time.Time {
	// time.Weekday starts on Sunday; shift so that Monday is day zero
	offset := (int(t.Weekday()) + 6) % DaysInAWeek

	return RoundToStart(t.AddDate(0, 0, -offset))
}

// WeekDays returns the seven calendar days of the week containing t, starting
// on Monday.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)

	days := make([]time.Time, DaysInAWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	return days
}

// DateKey formats t as a session record date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// FromStr parses a natural language or absolute date expression such as
// "yesterday", "2 days ago" or "2025-03-10" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return dt.Time, nil
}
