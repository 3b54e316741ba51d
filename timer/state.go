package timer

import (
	"github.com/ayoisaiah/studytimer/internal/config"
)

// State is a serialisable snapshot of a timer.
type State struct {
	Config                config.TimerConfig `json:"config"`
	Phase                 Phase              `json:"phase"`
	RemainingSeconds      int                `json:"remaining_seconds"`
	WorkCyclesElapsed     int                `json:"work_cycles_elapsed"`
	CompletedWorkSessions int                `json:"completed_work_sessions"`
}

// State returns a snapshot of the timer.
func (t *Timer) State() State {
	return State{
		Config:                t.cfg,
		Phase:                 t.phase,
		RemainingSeconds:      t.remaining,
		WorkCyclesElapsed:     t.workCyclesElapsed,
		CompletedWorkSessions: t.completedWorkSessions,
	}
}

// Restore creates a paused timer from a snapshot using cfg. The remaining
// time is clamped to the length of the phase under cfg and negative
// counters are zeroed.
func Restore(cfg config.TimerConfig, s State) *Timer {
	t := New(cfg)

	switch s.Phase {
	case Work, ShortBreak, LongBreak:
		t.phase = s.Phase
	default:
		t.phase = Work
	}

	t.workCyclesElapsed = max(s.WorkCyclesElapsed, 0)
	t.completedWorkSessions = min(max(s.CompletedWorkSessions, 0), t.workCyclesElapsed)
	t.remaining = min(max(s.RemainingSeconds, 0), t.PhaseTotal(t.phase))

	return t
}
