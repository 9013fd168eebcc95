package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/progress"
	"github.com/kbpkavisika/GearUp/internal/widget"
)

const habitBarWidth = 16

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateMoods:
		content = m.viewMoods()
	case StateLogMood:
		return docStyle.Render(m.form.View())
	}

	var errorLine string
	if m.formError != "" {
		errorLine = errorStyle.Render("✗ " + m.formError)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewSummary(),
		content,
		errorLine,
		m.help.View(m.keys),
	))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Moods"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSummary() string {
	summary := progress.DailySummary(m.habits, m.progress)
	band := lipgloss.NewStyle().Foreground(widget.ProgressColor(summary.Percentage))

	line := band.Render(fmt.Sprintf("Today: %d/%d habits · %d%%", summary.Completed, summary.Total, summary.Percentage))
	return line + "\n" + faintStyle.Render(progress.MotivationalTier(summary.Percentage)) + "\n"
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return faintStyle.Render("No habits yet. Add one with `gearup habit add`.")
	}

	var b strings.Builder
	for i, h := range m.habits {
		p := m.progress[h.ID]
		pct := p.Percentage(h.TargetValue)

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		check := "○"
		if p.IsCompleted {
			check = completedStyle.Render("●")
		}

		bar := lipgloss.NewStyle().
			Foreground(widget.ProgressColor(pct)).
			Render(widget.Bar(pct, habitBarWidth))

		line := fmt.Sprintf("%s%s %s %-16s %s %d/%d %s",
			cursor, check, h.Icon, h.Name, bar, p.CurrentValue, h.TargetValue, h.Unit)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewMoods() string {
	if len(m.moods) == 0 {
		return faintStyle.Render("No moods logged yet. Press m to log one.")
	}

	var b strings.Builder
	for _, e := range m.moods {
		when := fmt.Sprintf("%s %s", models.DisplayDate(e.Timestamp), models.DisplayTime(e.Timestamp))
		line := fmt.Sprintf("%s %-11s %s", e.Emoji, e.MoodName, faintStyle.Render(when))
		if e.Note != "" {
			line += "\n   " + faintStyle.Render(e.Note)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
