package timer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studytimer/internal/config"
)

func testConfig() config.TimerConfig {
	return config.TimerConfig{
		WorkMinutes:             1,
		ShortBreakMinutes:       1,
		LongBreakMinutes:        2,
		SessionsBeforeLongBreak: 4,
	}
}

// runToCompletion ticks a started timer until its phase ends.
func runToCompletion(t *testing.T, tm *Timer) TickResult {
	t.Helper()

	tm.Start()

	for i := 0; i <= tm.PhaseTotal(tm.Phase())+1; i++ {
		if res := tm.Tick(); res.PhaseCompleted {
			return res
		}
	}

	t.Fatalf("phase %s never completed", tm.Phase())

	return Continuing
}

func TestNew(t *testing.T) {
	tm := New(config.Default())

	assert.Equal(t, Work, tm.Phase())
	assert.Equal(t, 25*60, tm.RemainingSeconds())
	assert.False(t, tm.Running())
	assert.Zero(t, tm.WorkCyclesElapsed())
	assert.Zero(t, tm.CompletedWorkSessions())
	assert.Equal(t, "25:00", tm.DisplayString())
}

func TestNewWithInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.SessionsBeforeLongBreak = 0

	tm := New(cfg)
	assert.Equal(t, config.Default(), tm.Config())

	assert.Equal(t, ShortBreak, tm.Skip())
	assert.Equal(t, 1, tm.WorkCycle())

	tm = Restore(config.TimerConfig{}, State{Phase: LongBreak, RemainingSeconds: 30})
	assert.Equal(t, config.Default(), tm.Config())
	assert.Equal(t, Work, tm.NextPhase())
}

func TestTickIsMonotonic(t *testing.T) {
	tm := New(testConfig())
	tm.Start()

	prev := tm.RemainingSeconds()

	for range 60 {
		res := tm.Tick()
		require.False(t, res.PhaseCompleted)
		require.Equal(t, prev-1, tm.RemainingSeconds())
		prev = tm.RemainingSeconds()
	}

	assert.Zero(t, tm.RemainingSeconds())
	assert.Equal(t, Work, tm.Phase())

	// the next tick performs the transition
	res := tm.Tick()
	assert.Equal(t, TickResult{PhaseCompleted: true, Completed: Work}, res)
	assert.Equal(t, ShortBreak, tm.Phase())
	assert.False(t, tm.Running())
	assert.Equal(t, 60, tm.RemainingSeconds())
}

func TestTickWhilePaused(t *testing.T) {
	tm := New(testConfig())

	for range 5 {
		assert.Equal(t, Continuing, tm.Tick())
	}

	assert.Equal(t, 60, tm.RemainingSeconds())
}

func TestCycleOrder(t *testing.T) {
	tm := New(testConfig())

	var breaks []Phase

	for range 8 {
		res := runToCompletion(t, tm)
		require.Equal(t, Work, res.Completed)

		breaks = append(breaks, tm.Phase())

		res = runToCompletion(t, tm)
		require.True(t, res.Completed.IsBreak())
		require.Equal(t, Work, tm.Phase())
	}

	expected := []Phase{
		ShortBreak, ShortBreak, ShortBreak, LongBreak,
		ShortBreak, ShortBreak, ShortBreak, LongBreak,
	}

	if diff := cmp.Diff(expected, breaks); diff != "" {
		t.Fatalf("break order mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 8, tm.CompletedWorkSessions())
	assert.Equal(t, 8, tm.WorkCyclesElapsed())
}

func TestSkipNeverCountsAsCompleted(t *testing.T) {
	tm := New(testConfig())
	tm.Start()
	tm.Tick()

	next := tm.Skip()

	assert.Equal(t, ShortBreak, next)
	assert.False(t, tm.Running())
	assert.Equal(t, 1, tm.WorkCyclesElapsed())
	assert.Zero(t, tm.CompletedWorkSessions())
	assert.Equal(t, 60, tm.RemainingSeconds())

	assert.Equal(t, Work, tm.Skip())
	assert.Equal(t, 1, tm.WorkCyclesElapsed())
}

func TestSkipAdvancesLongBreakCycle(t *testing.T) {
	tm := New(testConfig())

	for range 3 {
		require.Equal(t, ShortBreak, tm.Skip())
		require.Equal(t, Work, tm.Skip())
	}

	assert.Equal(t, LongBreak, tm.Skip())
	assert.Equal(t, 120, tm.RemainingSeconds())
	assert.Zero(t, tm.CompletedWorkSessions())
}

func TestStartPauseIdempotent(t *testing.T) {
	tm := New(testConfig())

	tm.Start()
	tm.Start()
	assert.True(t, tm.Running())

	tm.Tick()

	tm.Pause()
	tm.Pause()
	assert.False(t, tm.Running())
	assert.Equal(t, 59, tm.RemainingSeconds())

	tm.Toggle()
	assert.True(t, tm.Running())
	tm.Toggle()
	assert.False(t, tm.Running())
}

func TestReset(t *testing.T) {
	tm := New(testConfig())
	runToCompletion(t, tm)
	tm.Start()
	tm.Tick()

	tm.Reset()

	assert.Equal(t, Work, tm.Phase())
	assert.Equal(t, 60, tm.RemainingSeconds())
	assert.False(t, tm.Running())
	assert.Zero(t, tm.WorkCyclesElapsed())
	assert.Zero(t, tm.CompletedWorkSessions())
}

func TestApplyConfiguration(t *testing.T) {
	tm := New(testConfig())
	runToCompletion(t, tm)
	tm.Start()
	tm.Tick()

	cfg := testConfig()
	cfg.ShortBreakMinutes = 3

	require.NoError(t, tm.ApplyConfiguration(cfg))

	assert.Equal(t, ShortBreak, tm.Phase())
	assert.Equal(t, 180, tm.RemainingSeconds())
	assert.False(t, tm.Running())
	assert.Equal(t, 1, tm.CompletedWorkSessions())
	assert.Equal(t, cfg, tm.Config())
}

func TestApplyConfigurationRejectsInvalid(t *testing.T) {
	tm := New(testConfig())
	tm.Start()
	tm.Tick()

	cfg := testConfig()
	cfg.WorkMinutes = 0

	err := tm.ApplyConfiguration(cfg)

	require.ErrorIs(t, err, config.ErrInvalidConfiguration)
	assert.Equal(t, testConfig(), tm.Config())
	assert.Equal(t, 59, tm.RemainingSeconds())
	assert.True(t, tm.Running())
}

func TestDisplayString(t *testing.T) {
	tm := Restore(testConfig(), State{Phase: Work, RemainingSeconds: 65})
	assert.Equal(t, "01:00", tm.DisplayString(), "remaining is clamped to the phase length")

	cfg := testConfig()
	cfg.WorkMinutes = 2
	tm = Restore(cfg, State{Phase: Work, RemainingSeconds: 65})
	assert.Equal(t, "01:05", tm.DisplayString())

	tm = Restore(cfg, State{Phase: Work, RemainingSeconds: 0})
	assert.Equal(t, "00:00", tm.DisplayString())
}

func TestProgressPercent(t *testing.T) {
	tm := New(testConfig())
	assert.InDelta(t, 0, tm.ProgressPercent(), 0.001)

	tm.Start()

	for range 15 {
		tm.Tick()
	}

	assert.InDelta(t, 25, tm.ProgressPercent(), 0.001)

	for range 45 {
		tm.Tick()
	}

	assert.InDelta(t, 100, tm.ProgressPercent(), 0.001)
}

func TestDescriptor(t *testing.T) {
	tm := New(testConfig())

	for range 3 {
		tm.Skip()
		tm.Skip()
	}

	expected := Descriptor{
		Label:                 "Focus Time",
		Phase:                 Work,
		Progress:              0,
		CompletedWorkSessions: 0,
		NextLabel:             "Long Break",
	}

	assert.Equal(t, expected, tm.Descriptor())
	assert.Equal(t, 4, tm.WorkCycle())

	tm.Skip()
	assert.Equal(t, "Focus Time", tm.Descriptor().NextLabel)
	assert.Equal(t, 4, tm.WorkCycle())
}

func TestStateRestore(t *testing.T) {
	tm := New(testConfig())
	runToCompletion(t, tm)
	tm.Start()

	for range 10 {
		tm.Tick()
	}

	restored := Restore(testConfig(), tm.State())

	if diff := cmp.Diff(tm.State(), restored.State()); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, restored.Running())
}

func TestRestoreSanitises(t *testing.T) {
	tm := Restore(testConfig(), State{
		Phase:                 Phase(9),
		RemainingSeconds:      -4,
		WorkCyclesElapsed:     -1,
		CompletedWorkSessions: 3,
	})

	assert.Equal(t, Work, tm.Phase())
	assert.Zero(t, tm.RemainingSeconds())
	assert.Zero(t, tm.WorkCyclesElapsed())
	assert.Zero(t, tm.CompletedWorkSessions())
}
