// Package tui is the terminal front end of the timer. It drives the timer
// state machine once per second, logs finished sessions and triggers
// notifications.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/studytimer/internal/config"
	"github.com/ayoisaiah/studytimer/internal/session"
	"github.com/ayoisaiah/studytimer/notify"
	"github.com/ayoisaiah/studytimer/stats"
	"github.com/ayoisaiah/studytimer/timer"
)

type view int

const (
	timerView view = iota
	dashboardView
	settingsView
)

type (
	// SessionLog records finished sessions and provides statistics.
	SessionLog interface {
		stats.Source
		Append(kind session.Kind, durationMinutes int, completed bool, notes string) (session.Record, error)
	}

	// SettingsStore persists the timer configuration.
	SettingsStore interface {
		LoadFile() config.TimerConfig
		Save(cfg config.TimerConfig) error
	}

	// Notifier announces phase changes.
	Notifier interface {
		Notify(ctx context.Context, ev notify.Event)
	}

	// SnapshotStore keeps the timer state between runs.
	SnapshotStore interface {
		SaveTimer(state timer.State) error
		DeleteTimer() error
	}

	// Deps are the collaborators of the model. Notifier and Snapshots may be
	// nil.
	Deps struct {
		Timer     *timer.Timer
		Log       SessionLog
		Settings  SettingsStore
		Notifier  Notifier
		Snapshots SnapshotStore
		// Now defaults to time.Now
		Now func() time.Time
	}
)

type tickMsg time.Time

// notifiedMsg reports that a notification finished.
type notifiedMsg struct{}

// Model is the bubbletea model of the timer screen.
type Model struct {
	ctx      context.Context
	deps     Deps
	form     *huh.Form
	values   *formValues
	shown    config.TimerConfig
	flash    string
	formErr  string
	errMsg   string
	help     help.Model
	progress progress.Model
	styles   styles
	interval time.Duration
	view     view
}

// New returns a model for the timer in deps.
func New(ctx context.Context, deps Deps) *Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Model{
		ctx:      ctx,
		deps:     deps,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		styles:   defaultStyles(),
		interval: time.Second,
		view:     timerView,
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(New(ctx, deps), tea.WithContext(ctx))

	_, err := p.Run()

	return err
}
