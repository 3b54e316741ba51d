package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/studytimer/timer"
)

func (m *Model) phaseHeader() string {
	t := m.deps.Timer
	phase := t.Phase()

	var s strings.Builder

	s.WriteString(m.styles.phases[phase].Render(phase.Label()))

	if phase == timer.Work {
		s.WriteString(m.styles.hint.Render(fmt.Sprintf(
			" (%d/%d)",
			t.WorkCycle(),
			t.Config().SessionsBeforeLongBreak,
		)))
	}

	if !t.Running() {
		s.WriteString(" " + m.styles.secondary.Render("[Paused]"))
	}

	return s.String()
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return "\n\n" + m.styles.err.Render(m.errMsg)
	case m.flash != "":
		return "\n\n" + m.styles.flash.Render(m.flash)
	}

	return ""
}

func (m *Model) timerView() string {
	t := m.deps.Timer
	d := t.Descriptor()

	var s strings.Builder

	s.WriteString(m.phaseHeader())
	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(t.DisplayString()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(d.Progress / 100))
	s.WriteString("\n\n")
	s.WriteString(m.styles.hint.Render(fmt.Sprintf(
		"Sessions completed: %d · Next: %s",
		d.CompletedWorkSessions,
		d.NextLabel,
	)))
	s.WriteString(m.statusLine())
	s.WriteString("\n\n" + m.help.View(defaultKeymap))

	return s.String()
}

func (m *Model) settingsView() string {
	var s strings.Builder

	s.WriteString(m.form.View())

	if m.formErr != "" {
		s.WriteString("\n" + m.styles.err.Render(m.formErr))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView(
		[]key.Binding{defaultKeymap.esc},
	))

	return s.String()
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string

	switch m.view {
	case settingsView:
		content = m.settingsView()
	case dashboardView:
		content = m.dashboardView()
	default:
		content = m.timerView()
	}

	return m.styles.base.Render(content)
}
