// Package timer implements the Pomodoro state machine. It keeps no clock of
// its own: the caller drives it by calling Tick once per second.
package timer

import (
	"log/slog"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/timeutil"
)

// TickResult is returned by Tick.
type TickResult struct {
	// Completed is the phase that just finished. Only meaningful when
	// PhaseCompleted is true.
	Completed      Phase
	PhaseCompleted bool
}

// Continuing is the result of a tick that did not end the phase.
var Continuing = TickResult{}

// Descriptor summarises the timer for display.
type Descriptor struct {
	Label                 string  `json:"name"`
	Phase                 Phase   `json:"type"`
	Progress              float64 `json:"progress"`
	CompletedWorkSessions int     `json:"completed_sessions"`
	NextLabel             string  `json:"next_session"`
}

// Timer is the Pomodoro state machine. The zero value is not usable; create
// one with New.
type Timer struct {
	cfg                   config.TimerConfig
	phase                 Phase
	remaining             int
	workCyclesElapsed     int
	completedWorkSessions int
	running               bool
}

// New returns a paused timer at the start of a work phase. An invalid
// configuration is replaced by the defaults.
func New(cfg config.TimerConfig) *Timer {
	if err := cfg.Validate(); err != nil {
		slog.Warn("invalid timer configuration, using defaults",
			slog.Any("error", err),
		)

		cfg = config.Default()
	}

	t := &Timer{cfg: cfg}
	t.Reset()

	return t
}

// Config returns the configuration in use.
func (t *Timer) Config() config.TimerConfig {
	return t.cfg
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// RemainingSeconds returns the seconds left in the current phase.
func (t *Timer) RemainingSeconds() int {
	return t.remaining
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	return t.running
}

// WorkCyclesElapsed counts every work phase that has ended, skipped or not.
func (t *Timer) WorkCyclesElapsed() int {
	return t.workCyclesElapsed
}

// CompletedWorkSessions counts work phases that ran down to zero.
func (t *Timer) CompletedWorkSessions() int {
	return t.completedWorkSessions
}

// WorkCycle returns the 1-based position of the current or most recent work
// phase within the long break cycle.
func (t *Timer) WorkCycle() int {
	n := t.cfg.SessionsBeforeLongBreak

	if t.phase == Work || t.workCyclesElapsed == 0 {
		return t.workCyclesElapsed%n + 1
	}

	// during a break the work phase that preceded it is reported
	return (t.workCyclesElapsed-1)%n + 1
}

// Start begins or resumes the countdown.
func (t *Timer) Start() {
	t.running = true
}

// Pause stops the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	t.running = false
}

// Toggle switches between running and paused.
func (t *Timer) Toggle() {
	t.running = !t.running
}

// Tick advances the countdown by one second. The tick after the one that
// reaches zero moves the timer to the next phase, stops it and reports the
// phase that finished.
func (t *Timer) Tick() TickResult {
	if !t.running {
		return Continuing
	}

	if t.remaining > 0 {
		t.remaining--
		return Continuing
	}

	completed := t.phase
	t.advance(true)
	t.running = false

	return TickResult{PhaseCompleted: true, Completed: completed}
}

// Skip ends the current phase early and returns the new phase. A skipped
// work phase advances the long break cycle but is not counted as completed.
func (t *Timer) Skip() Phase {
	t.running = false
	t.advance(false)

	return t.phase
}

// Reset returns the timer to its initial state: a paused work phase with
// both counters at zero.
func (t *Timer) Reset() {
	t.phase = Work
	t.workCyclesElapsed = 0
	t.completedWorkSessions = 0
	t.running = false
	t.remaining = t.PhaseTotal(Work)
}

// ReloadDurations restarts the current phase from its configured duration.
// The phase and counters are kept.
func (t *Timer) ReloadDurations() {
	t.running = false
	t.remaining = t.PhaseTotal(t.phase)
}

// ApplyConfiguration replaces the configuration and reloads durations. An
// invalid configuration leaves the timer untouched.
func (t *Timer) ApplyConfiguration(cfg config.TimerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	t.cfg = cfg
	t.ReloadDurations()

	return nil
}

// PhaseTotal returns the configured length of p in seconds.
func (t *Timer) PhaseTotal(p Phase) int {
	switch p {
	case ShortBreak:
		return t.cfg.ShortBreakMinutes * 60
	case LongBreak:
		return t.cfg.LongBreakMinutes * 60
	default:
		return t.cfg.WorkMinutes * 60
	}
}

// PhaseMinutes returns the configured length of p in minutes.
func (t *Timer) PhaseMinutes(p Phase) int {
	return t.PhaseTotal(p) / 60
}

// NextPhase returns the phase that would follow if the current one ended
// now.
func (t *Timer) NextPhase() Phase {
	if t.phase != Work {
		return Work
	}

	if (t.workCyclesElapsed+1)%t.cfg.SessionsBeforeLongBreak == 0 {
		return LongBreak
	}

	return ShortBreak
}

func (t *Timer) advance(natural bool) {
	if t.phase == Work {
		t.workCyclesElapsed++

		if natural {
			t.completedWorkSessions++
		}

		if t.workCyclesElapsed%t.cfg.SessionsBeforeLongBreak == 0 {
			t.phase = LongBreak
		} else {
			t.phase = ShortBreak
		}
	} else {
		t.phase = Work
	}

	t.remaining = t.PhaseTotal(t.phase)
}

// ProgressPercent returns how much of the current phase has elapsed, in the
// range [0, 100].
func (t *Timer) ProgressPercent() float64 {
	total := t.PhaseTotal(t.phase)
	if total <= 0 {
		return 0
	}

	p := 100 * (1 - float64(t.remaining)/float64(total))

	return min(max(p, 0), 100)
}

// DisplayString formats the remaining time as MM:SS.
func (t *Timer) DisplayString() string {
	return timeutil.FormatClock(t.remaining)
}

// Descriptor describes the current phase for display.
func (t *Timer) Descriptor() Descriptor {
	return Descriptor{
		Label:                 t.phase.Label(),
		Phase:                 t.phase,
		Progress:              t.ProgressPercent(),
		CompletedWorkSessions: t.completedWorkSessions,
		NextLabel:             t.NextPhase().Label(),
	}
}
