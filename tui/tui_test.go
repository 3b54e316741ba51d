package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/internal/testutil"
	"github.com/ayoisaiah/studytimer/notify"
	"github.com/ayoisaiah/studytimer/sessionlog"
	"github.com/ayoisaiah/studytimer/timer"
)

var now = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Notify(_ context.Context, ev notify.Event) {
	f.events = append(f.events, ev)
}

type fakeSettings struct {
	err   error
	file  config.TimerConfig
	saved []config.TimerConfig
}

func (f *fakeSettings) LoadFile() config.TimerConfig {
	return f.file
}

func (f *fakeSettings) Save(cfg config.TimerConfig) error {
	if f.err != nil {
		return f.err
	}

	f.saved = append(f.saved, cfg)

	return nil
}

type fakeSnapshots struct {
	state   *timer.State
	deleted bool
}

func (f *fakeSnapshots) SaveTimer(state timer.State) error {
	f.state = &state
	return nil
}

func (f *fakeSnapshots) DeleteTimer() error {
	f.deleted = true
	return nil
}

type fixture struct {
	model     *Model
	log       *sessionlog.Log
	notifier  *fakeNotifier
	settings  *fakeSettings
	snapshots *fakeSnapshots
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.TimerConfig{
		WorkMinutes:             1,
		ShortBreakMinutes:       1,
		LongBreakMinutes:        2,
		SessionsBeforeLongBreak: 2,
	}

	f := &fixture{
		log: sessionlog.Open(
			filepath.Join(t.TempDir(), "sessions.json"),
			sessionlog.WithClock(testutil.Clock(now)),
		),
		notifier:  &fakeNotifier{},
		settings:  &fakeSettings{file: config.Default()},
		snapshots: &fakeSnapshots{},
	}

	f.model = New(context.Background(), Deps{
		Timer:     timer.New(cfg),
		Log:       f.log,
		Settings:  f.settings,
		Notifier:  f.notifier,
		Snapshots: f.snapshots,
		Now:       func() time.Time { return now },
	})
	f.model.interval = time.Millisecond

	return f
}

func keyPress(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd so that notifications are delivered. The resulting
// messages are dropped.
func run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				_ = c()
			}
		}
	}
}

func (f *fixture) press(keys ...string) {
	for _, k := range keys {
		_, cmd := f.model.Update(keyPress(k))

		// the settings form starts cursor blinking; leave it alone
		if f.model.view != settingsView {
			run(cmd)
		}
	}
}

func (f *fixture) ticks(n int) {
	for range n {
		_, cmd := f.model.Update(tickMsg(now))
		run(cmd)
	}
}

func TestNaturalCompletionIsLogged(t *testing.T) {
	f := newFixture(t)

	f.press(" ")
	f.ticks(61)

	records := f.log.Records()
	require.Len(t, records, 1)
	assert.Equal(t, session.Focus, records[0].Kind)
	assert.Equal(t, 1, records[0].Duration)
	assert.True(t, records[0].Completed)

	assert.Equal(t, timer.ShortBreak, f.model.deps.Timer.Phase())
	assert.Equal(t, []notify.Event{{Ended: timer.Work, Next: timer.ShortBreak}}, f.notifier.events)
	assert.Contains(t, f.model.View(), "Focus Time finished! Ready for Short Break?")

	// breaks are logged with their own kind
	f.press(" ")
	f.ticks(61)

	records = f.log.Records()
	require.Len(t, records, 2)
	assert.Equal(t, session.ShortBreak, records[1].Kind)
}

func TestSkipWorkIsLogged(t *testing.T) {
	f := newFixture(t)

	f.press(" ")
	f.ticks(10)
	f.press("s")

	records := f.log.Records()
	require.Len(t, records, 1)
	assert.Equal(t, session.Focus, records[0].Kind)
	assert.Zero(t, records[0].Duration)
	assert.False(t, records[0].Completed)
	assert.Equal(t, session.SkippedNote, records[0].Notes)

	require.Len(t, f.notifier.events, 1)
	assert.True(t, f.notifier.events[0].Skipped)
	assert.False(t, f.model.deps.Timer.Running())
}

func TestSkipBreakIsNotLogged(t *testing.T) {
	f := newFixture(t)

	f.press("s", "s")

	assert.Len(t, f.log.Records(), 1)
	assert.Len(t, f.notifier.events, 2)
	assert.Equal(t, timer.Work, f.model.deps.Timer.Phase())
}

func TestPausedTimerDoesNotAdvance(t *testing.T) {
	f := newFixture(t)

	f.ticks(5)
	assert.Equal(t, 60, f.model.deps.Timer.RemainingSeconds())
	assert.Contains(t, f.model.View(), "[Paused]")

	f.press(" ")
	f.ticks(5)
	f.press(" ")
	f.ticks(5)

	assert.Equal(t, 55, f.model.deps.Timer.RemainingSeconds())
}

func TestRestartAndReset(t *testing.T) {
	f := newFixture(t)
	tm := f.model.deps.Timer

	f.press("s", " ")
	f.ticks(5)

	f.press("r")
	assert.Equal(t, timer.ShortBreak, tm.Phase())
	assert.Equal(t, 60, tm.RemainingSeconds())
	assert.Equal(t, 1, tm.WorkCyclesElapsed())

	f.press("R")
	assert.Equal(t, timer.Work, tm.Phase())
	assert.Zero(t, tm.WorkCyclesElapsed())
}

func TestApplySettings(t *testing.T) {
	f := newFixture(t)

	f.press("e")
	require.Equal(t, settingsView, f.model.view)

	f.model.values.work = "50"

	require.NoError(t, f.model.applySettings())

	require.Len(t, f.settings.saved, 1)
	assert.Equal(t, 50, f.settings.saved[0].WorkMinutes)
	assert.Equal(t, 50*60, f.model.deps.Timer.RemainingSeconds())
}

func TestApplySettingsKeepsOverridesOutOfFile(t *testing.T) {
	f := newFixture(t)
	f.settings.file = config.TimerConfig{
		WorkMinutes:             50,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}

	f.press("e")
	f.model.values.shortBreak = "7"

	require.NoError(t, f.model.applySettings())

	require.Len(t, f.settings.saved, 1)
	assert.Equal(t, config.TimerConfig{
		WorkMinutes:             50,
		ShortBreakMinutes:       7,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}, f.settings.saved[0])

	assert.Equal(t, config.TimerConfig{
		WorkMinutes:             1,
		ShortBreakMinutes:       7,
		LongBreakMinutes:        2,
		SessionsBeforeLongBreak: 2,
	}, f.model.deps.Timer.Config())
}

func TestApplySettingsRejected(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*fixture)
		err    error
	}{
		{
			name:   "above upper bound",
			mutate: func(f *fixture) { f.model.values.shortBreak = "31" },
			err:    config.ErrInvalidConfiguration,
		},
		{
			name:   "not a number",
			mutate: func(f *fixture) { f.model.values.cycle = "four" },
			err:    config.ErrInvalidConfiguration,
		},
		{
			name:   "save fails",
			mutate: func(f *fixture) { f.settings.err = config.ErrPersistence },
			err:    config.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			before := f.model.deps.Timer.Config()

			f.press("e")
			tc.mutate(f)

			err := f.model.applySettings()

			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, before, f.model.deps.Timer.Config())
		})
	}
}

func TestEscClosesSettings(t *testing.T) {
	f := newFixture(t)

	f.press("e")
	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, timerView, f.model.view)
	assert.Nil(t, f.model.form)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)

	_, err := f.log.Append(session.Focus, 25, true, "")
	require.NoError(t, err)

	f.press("d")

	view := f.model.View()

	for _, want := range []string{"Today's Summary", "25m", "Weekly Focus Time", "Wed", "Focus: 1"} {
		assert.Contains(t, view, want)
	}

	f.press("d")
	assert.Equal(t, timerView, f.model.view)
}

func TestQuitSavesSnapshot(t *testing.T) {
	f := newFixture(t)

	f.press(" ")
	f.ticks(3)

	_, cmd := f.model.Update(keyPress("q"))

	require.NotNil(t, cmd)
	require.NotNil(t, f.snapshots.state)
	assert.Equal(t, 57, f.snapshots.state.RemainingSeconds)
}

func TestQuitFreshTimerClearsSnapshot(t *testing.T) {
	f := newFixture(t)

	_, _ = f.model.Update(keyPress("q"))

	assert.True(t, f.snapshots.deleted)
	assert.Nil(t, f.snapshots.state)
}

type failingLog struct {
	*sessionlog.Log
}

func (failingLog) Append(session.Kind, int, bool, string) (session.Record, error) {
	return session.Record{}, sessionlog.ErrPersistence.Wrap(errors.New("disk full"))
}

func TestAppendFailureIsShown(t *testing.T) {
	f := newFixture(t)
	f.model.deps.Log = failingLog{f.log}

	f.press("s")

	assert.True(t, strings.Contains(f.model.View(), "disk full"))
	assert.Equal(t, timer.ShortBreak, f.model.deps.Timer.Phase())
}
