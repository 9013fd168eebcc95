package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kbpkavisika/GearUp/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's progress."`
	Show   HabitShowCmd   `cmd:"" help:"Show one habit in detail."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all of its progress."`
	Done   HabitDoneCmd   `cmd:"" help:"Log one unit of progress for today."`
	Reset  HabitResetCmd  `cmd:"" help:"Delete all progress history for every habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Target      int    `help:"Daily target value." default:"1"`
	Unit        string `help:"Unit of measure (glasses, minutes, ...)." default:"times"`
	Icon        string `help:"Emoji shown next to the habit." default:"✅"`
	Description string `help:"Short description." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", c.Target)
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, c.Name) {
			return fmt.Errorf("habit with name %q already exists", c.Name)
		}
	}

	habit := models.NewHabit(c.Name, c.Description, c.Target, c.Unit, c.Icon)
	habits = append(habits, habit)
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (%d %s daily)\n", habit.Icon, habit.Name, habit.TargetValue, habit.Unit)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	byHabit, err := TodaysProgressByHabit(ctx.Store)
	if err != nil {
		return err
	}

	for _, h := range habits {
		p := byHabit[h.ID]
		check := " "
		if p.IsCompleted {
			check = "✓"
		}
		fmt.Printf("[%s] %s %-20s %d/%d %s  (%d%%)  %s\n",
			check, h.Icon, h.Name, p.CurrentValue, h.TargetValue, h.Unit,
			p.Percentage(h.TargetValue), shortID(h.ID))
	}
	return nil
}

type HabitShowCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", habit.Icon, habit.Name)
	if habit.Description != "" {
		fmt.Printf("  %s\n", habit.Description)
	}
	fmt.Printf("  Target:  %d %s daily\n", habit.TargetValue, habit.Unit)
	fmt.Printf("  Created: %s\n", habit.CreatedDate)
	fmt.Printf("  ID:      %s\n", habit.ID)

	progress, err := ctx.Store.GetHabitProgressForDate(habit.ID, models.TodayKey())
	if err == nil {
		status := "in progress"
		if progress.IsCompleted {
			status = "completed at " + progress.CompletedAt
		}
		fmt.Printf("  Today:   %d/%d (%s)\n", progress.CurrentValue, habit.TargetValue, status)
	} else {
		fmt.Printf("  Today:   no progress yet\n")
	}
	return nil
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit id, id prefix, or name."`
	Name        *string `help:"New name."`
	Target      *int    `help:"New daily target value."`
	Unit        *string `help:"New unit of measure."`
	Icon        *string `help:"New emoji."`
	Description *string `help:"New description."`
	Active      *bool   `help:"Set the habit active or paused."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != nil {
		if strings.TrimSpace(*c.Name) == "" {
			return fmt.Errorf("habit name must not be empty")
		}
		habit.Name = *c.Name
	}
	if c.Target != nil {
		if *c.Target <= 0 {
			return fmt.Errorf("target must be positive, got %d", *c.Target)
		}
		habit.TargetValue = *c.Target
	}
	if c.Unit != nil {
		habit.Unit = *c.Unit
	}
	if c.Icon != nil {
		habit.Icon = *c.Icon
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Active != nil {
		habit.IsActive = *c.Active
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		return err
	}
	found := false
	for i, h := range habits {
		if h.ID == habit.ID {
			habits[i] = habit
			found = true
		}
	}
	if !found {
		return fmt.Errorf("habit %s no longer exists", habit.ID)
	}
	if err := ctx.Store.SaveHabits(habits); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s %s\n", habit.Icon, habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its progress history.\n", habit.Name)
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix, or name."`
	Count int    `help:"Units of progress to log." default:"1"`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	habit, err := FindHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	var progress models.HabitProgress
	for i := 0; i < c.Count; i++ {
		progress, err = IncrementHabitToday(ctx.Store, habit)
		if err != nil {
			return err
		}
	}

	if progress.IsCompleted {
		fmt.Printf("%s %s: %d/%d %s — completed! 🎉\n",
			habit.Icon, habit.Name, progress.CurrentValue, habit.TargetValue, habit.Unit)
	} else {
		fmt.Printf("%s %s: %d/%d %s\n",
			habit.Icon, habit.Name, progress.CurrentValue, habit.TargetValue, habit.Unit)
	}
	return nil
}

type HabitResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *HabitResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete all habit progress?").
					Description("Habits are kept, but every day's progress is erased. This cannot be undone.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ClearHabitProgress(); err != nil {
		return err
	}

	fmt.Println("Cleared all habit progress.")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
