package timer

import (
	"github.com/ayoisaiah/studytimer/internal/session"
)

// Phase is the segment of the Pomodoro cycle the timer is in.
type Phase int

const (
	Work Phase = iota
	ShortBreak
	LongBreak
)

var phaseTags = map[Phase]string{
	Work:       "work",
	ShortBreak: "short_break",
	LongBreak:  "long_break",
}

// String returns the phase tag.
func (p Phase) String() string {
	if tag, ok := phaseTags[p]; ok {
		return tag
	}

	return "unknown"
}

// Label returns the name shown to the user.
func (p Phase) Label() string {
	switch p {
	case ShortBreak:
		return "Short Break"
	case LongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// IsBreak reports whether p is one of the break phases.
func (p Phase) IsBreak() bool {
	return p == ShortBreak || p == LongBreak
}

// Kind maps the phase to the session kind recorded in the log.
func (p Phase) Kind() session.Kind {
	switch p {
	case ShortBreak:
		return session.ShortBreak
	case LongBreak:
		return session.LongBreak
	default:
		return session.Focus
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	tag, ok := phaseTags[p]
	if !ok {
		return nil, errUnknownPhase.Fmt(int(p))
	}

	return []byte(tag), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	for phase, tag := range phaseTags {
		if tag == string(b) {
			*p = phase
			return nil
		}
	}

	return errUnknownPhaseTag.Fmt(string(b))
}
