package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kbpkavisika/GearUp/internal/cli"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
	}

	if m.state == StateLogMood {
		return m.updateLogMood(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
		if m.state == StateHabits {
			m.state = StateMoods
		} else {
			m.state = StateHabits
		}
		m.cursor = 0

	case key.Matches(keyMsg, m.keys.Refresh):
		m.refresh()

	case key.Matches(keyMsg, m.keys.LogMood):
		m.newMoodForm()
		m.state = StateLogMood
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Up):
		if m.state == StateHabits && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.state == StateHabits && m.cursor < len(m.habits)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Increment):
		if m.state == StateHabits && m.cursor < len(m.habits) {
			habit := m.habits[m.cursor]
			if _, err := cli.IncrementHabitToday(m.store, habit); err != nil {
				m.formError = err.Error()
			} else {
				m.refresh()
			}
		}
	}

	return m, nil
}

func (m Model) updateLogMood(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateMoods
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := cli.SaveTodaysMood(m.store, m.moodForm.Emoji, m.moodForm.Note); err != nil {
			m.formError = err.Error()
		} else {
			m.refresh()
		}
		m.state = StateMoods
	case huh.StateAborted:
		m.state = StateMoods
	}

	return m, cmd
}
