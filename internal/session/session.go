// Package session defines the records kept in the session log
package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Kind represents the type of a logged session.
type Kind string

const (
	Focus      Kind = "focus"
	ShortBreak Kind = "short_break"
	LongBreak  Kind = "long_break"
)

// SkippedNote is the note attached to a focus session that was skipped
// before its countdown finished.
const SkippedNote = "Skipped"

// Kinds lists the session kinds in display order.
var Kinds = []Kind{Focus, ShortBreak, LongBreak}

// Label returns a human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case Focus:
		return "Focus"
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	}

	return string(k)
}

// Record is a single entry in the session log. Records are never modified
// once appended.
type Record struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM:SS
	Kind      Kind   `json:"session_type"`
	Duration  int    `json:"duration"` // minutes
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
	Timestamp Time   `json:"timestamp"`
}

// Skipped reports whether the record marks a skipped session.
func (r *Record) Skipped() bool {
	return r.Notes == SkippedNote
}

// Metadata is derived from the records whenever the log is written.
type Metadata struct {
	LastUpdated   Time `json:"last_updated"`
	TotalSessions int  `json:"total_sessions"`
}

// File is the on-disk shape of the session log.
type File struct {
	Metadata Metadata `json:"metadata"`
	Sessions []Record `json:"sessions"`
}

// naiveLayout matches timestamps written without a zone offset, which are
// interpreted in the local time zone.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Time is a timestamp that is written as RFC 3339 but also accepts ISO 8601
// timestamps without a zone offset.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		t.Time = parsed
		return nil
	}

	parsed, err = time.ParseInLocation(naiveLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	t.Time = parsed

	return nil
}
