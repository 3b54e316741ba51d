package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/notify"
	"github.com/ayoisaiah/studytimer/timer"
)

// handleTick advances the timer and records a finished phase.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	t := m.deps.Timer

	res := t.Tick()
	if !res.PhaseCompleted {
		return m, m.tick()
	}

	ended := res.Completed

	m.record(ended.Kind(), t.PhaseMinutes(ended), true, "")

	if m.errMsg == "" {
		m.flash = fmt.Sprintf("%s finished! Ready for %s?", ended.Label(), t.Phase().Label())
	}

	ev := notify.Event{Ended: ended, Next: t.Phase()}

	return m, tea.Batch(m.tick(), m.notifyCmd(ev))
}

// handleSkip ends the current phase early. Only a skipped work phase is
// logged.
func (m *Model) handleSkip() tea.Cmd {
	t := m.deps.Timer

	ended := t.Phase()
	next := t.Skip()

	m.flash = ""

	if ended == timer.Work {
		m.record(session.Focus, 0, false, session.SkippedNote)
	}

	return m.notifyCmd(notify.Event{Ended: ended, Next: next, Skipped: true})
}

func (m *Model) record(kind session.Kind, minutes int, completed bool, notes string) {
	m.errMsg = ""

	_, err := m.deps.Log.Append(kind, minutes, completed, notes)
	if err != nil {
		slog.Error("recording session failed",
			slog.String("type", string(kind)),
			slog.Any("error", err),
		)

		m.errMsg = err.Error()
	}
}

func (m *Model) notifyCmd(ev notify.Event) tea.Cmd {
	n := m.deps.Notifier
	if n == nil {
		return nil
	}

	ctx := m.ctx

	return func() tea.Msg {
		n.Notify(ctx, ev)
		return notifiedMsg{}
	}
}

// persist saves the timer so it can be resumed. A timer that has not made
// any progress removes the previous snapshot instead.
func (m *Model) persist() {
	db := m.deps.Snapshots
	if db == nil {
		return
	}

	t := m.deps.Timer
	state := t.State()

	var err error

	fresh := state.Phase == timer.Work &&
		state.WorkCyclesElapsed == 0 &&
		state.RemainingSeconds == t.PhaseTotal(timer.Work)

	if fresh {
		err = db.DeleteTimer()
	} else {
		err = db.SaveTimer(state)
	}

	if err != nil {
		slog.Error("saving timer failed", slog.Any("error", err))
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.deps.Timer

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		m.persist()

		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.esc):
		m.view = timerView

		return m, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		t.Toggle()
		m.flash = ""

		return m, nil

	case key.Matches(msg, defaultKeymap.skip):
		return m, m.handleSkip()

	case key.Matches(msg, defaultKeymap.restart):
		t.ReloadDurations()
		m.flash = ""

		return m, nil

	case key.Matches(msg, defaultKeymap.reset):
		t.Reset()
		m.flash = ""

		return m, nil

	case key.Matches(msg, defaultKeymap.settings):
		return m, m.openSettings()

	case key.Matches(msg, defaultKeymap.dashboard):
		if m.view == dashboardView {
			m.view = timerView
		} else {
			m.view = dashboardView
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil
	}

	return m, nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()

	case notifiedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.view == settingsView {
		return m.updateSettings(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
