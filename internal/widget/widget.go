// Package widget renders the compact daily-progress card shown by
// `gearup widget`, intended for embedding in status bars and scratchpads.
package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kbpkavisika/GearUp/internal/progress"
)

const barWidth = 20

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8EFF00")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)

	messageStyle = lipgloss.NewStyle().Faint(true)
)

// ProgressColor returns the band color for a completion percentage.
func ProgressColor(percentage int) lipgloss.Color {
	switch {
	case percentage >= 80:
		return lipgloss.Color("#4CAF50")
	case percentage >= 60:
		return lipgloss.Color("#8EFF00")
	case percentage >= 40:
		return lipgloss.Color("#FF9800")
	case percentage >= 20:
		return lipgloss.Color("#FFC107")
	default:
		return lipgloss.Color("#F44336")
	}
}

// Render draws the full progress card for a daily summary.
func Render(summary progress.Summary) string {
	band := lipgloss.NewStyle().Foreground(ProgressColor(summary.Percentage))

	header := titleStyle.Render("GearUp") + "  " +
		band.Render(fmt.Sprintf("%d/%d habits · %d%%", summary.Completed, summary.Total, summary.Percentage))

	bar := band.Render(Bar(summary.Percentage, barWidth))
	message := messageStyle.Render(progress.MotivationalTier(summary.Percentage))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, bar, message))
}

// Bar renders a fixed-width unicode progress bar for a percentage.
func Bar(percentage, width int) string {
	if width <= 0 {
		return ""
	}
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	filled := percentage * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
