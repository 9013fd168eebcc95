package cli

import (
	"fmt"

	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/progress"
	"github.com/kbpkavisika/GearUp/internal/widget"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}

	byHabit, err := TodaysProgressByHabit(ctx.Store)
	if err != nil {
		return err
	}

	summary := progress.DailySummary(habits, byHabit)
	fmt.Printf("Today: %d/%d habits completed (%d%%)\n", summary.Completed, summary.Total, summary.Percentage)
	fmt.Println(progress.MotivationalTier(summary.Percentage))
	fmt.Println()

	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		p := byHabit[h.ID]
		check := " "
		if p.IsCompleted {
			check = "✓"
		}
		fmt.Printf("[%s] %s %-20s %d/%d %s\n", check, h.Icon, h.Name, p.CurrentValue, h.TargetValue, h.Unit)
	}

	if entry, err := ctx.Store.GetTodaysMoodEntry(); err == nil {
		fmt.Printf("\nMood: %s %s at %s\n", entry.Emoji, entry.MoodName, models.DisplayTime(entry.Timestamp))
	}
	return nil
}

type WidgetCmd struct{}

func (c *WidgetCmd) Run(ctx *Context) error {
	summary, err := progress.TodaySummary(ctx.Store)
	if err != nil {
		return err
	}

	fmt.Println(widget.Render(summary))
	return nil
}
