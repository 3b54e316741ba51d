package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/studytimer/internal/config"
)

const settingsUpdatedMsg = "Timer settings have been updated!"

// formValues holds the raw text of the settings inputs.
type formValues struct {
	work       string
	shortBreak string
	longBreak  string
	cycle      string
}

func newFormValues(cfg config.TimerConfig) *formValues {
	return &formValues{
		work:       strconv.Itoa(cfg.WorkMinutes),
		shortBreak: strconv.Itoa(cfg.ShortBreakMinutes),
		longBreak:  strconv.Itoa(cfg.LongBreakMinutes),
		cycle:      strconv.Itoa(cfg.SessionsBeforeLongBreak),
	}
}

// config converts the inputs to a configuration, rejecting the first
// invalid one.
func (v *formValues) config() (config.TimerConfig, error) {
	var cfg config.TimerConfig

	fields := []struct {
		dst *int
		key string
		raw string
	}{
		{&cfg.WorkMinutes, config.KeyWorkDuration, v.work},
		{&cfg.ShortBreakMinutes, config.KeyShortBreakDuration, v.shortBreak},
		{&cfg.LongBreakMinutes, config.KeyLongBreakDuration, v.longBreak},
		{&cfg.SessionsBeforeLongBreak, config.KeySessionsBeforeLongBreak, v.cycle},
	}

	for _, f := range fields {
		n, err := config.ParseField(f.key, f.raw)
		if err != nil {
			return config.TimerConfig{}, err
		}

		*f.dst = n
	}

	return cfg, cfg.ValidateBounds()
}

func newSettingsForm(v *formValues) *huh.Form {
	input := func(title, settingKey string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Description(fmt.Sprintf("1 to %d", config.UpperBound(settingKey))).
			CharLimit(3).
			Value(value).
			Validate(func(s string) error {
				_, err := config.ParseField(settingKey, s)
				return err
			})
	}

	return huh.NewForm(
		huh.NewGroup(
			input("Work Duration (minutes)", config.KeyWorkDuration, &v.work),
			input("Short Break (minutes)", config.KeyShortBreakDuration, &v.shortBreak),
			input("Long Break (minutes)", config.KeyLongBreakDuration, &v.longBreak),
			input("Sessions before Long Break", config.KeySessionsBeforeLongBreak, &v.cycle),
		).
			Title("Timer Settings").
			Description("Changes take effect immediately and restart the current phase."),
	).WithShowHelp(true)
}

func (m *Model) openSettings() tea.Cmd {
	m.shown = m.deps.Timer.Config()
	m.values = newFormValues(m.shown)
	m.formErr = ""
	m.form = newSettingsForm(m.values)
	m.view = settingsView

	return m.form.Init()
}

func (m *Model) closeSettings() {
	m.form = nil
	m.formErr = ""
	m.view = timerView
}

// applySettings hands the form values to the timer. Only the fields the
// user edited are written to the settings file, so one-run overrides stay
// out of it. Nothing changes if validation or saving fails.
func (m *Model) applySettings() error {
	cfg, err := m.values.config()
	if err != nil {
		return err
	}

	saved := m.deps.Settings.LoadFile().WithChanges(m.shown, cfg)

	if err = m.deps.Settings.Save(saved); err != nil {
		return err
	}

	return m.deps.Timer.ApplyConfiguration(cfg)
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, defaultKeymap.esc) {
		m.closeSettings()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.applySettings(); err != nil {
			// keep the form open with the rejected values
			m.formErr = err.Error()
			m.form = newSettingsForm(m.values)

			return m, m.form.Init()
		}

		m.closeSettings()
		m.flash = settingsUpdatedMsg

		return m, nil

	case huh.StateAborted:
		m.closeSettings()

		return m, nil
	}

	return m, cmd
}
