package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/kbpkavisika/GearUp/internal/constants"
	"github.com/kbpkavisika/GearUp/internal/models"
)

type MoodCmd struct {
	Log   MoodLogCmd   `cmd:"" help:"Log today's mood."`
	Today MoodTodayCmd `cmd:"" help:"Show today's mood entry."`
	List  MoodListCmd  `cmd:"" help:"List mood history, newest first."`
	Clear MoodClearCmd `cmd:"" help:"Delete all mood entries."`
}

type MoodLogCmd struct {
	Mood string `arg:"" optional:"" help:"Mood emoji (😄 😊 🤩 😐 😴 😢 😡). Omit for an interactive prompt."`
	Note string `help:"Optional journal note." default:""`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	emoji := c.Mood
	note := c.Note

	if emoji == "" {
		var options []huh.Option[string]
		for _, mood := range models.AllMoods() {
			options = append(options, huh.NewOption(mood.Emoji+" "+mood.DisplayName, mood.Emoji))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("How are you feeling today?").
					Options(options...).
					Value(&emoji),
				huh.NewInput().
					Title("Note (optional)").
					Value(&note),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry, err := SaveTodaysMood(ctx.Store, emoji, note)
	if err != nil {
		return err
	}

	fmt.Printf("Logged mood: %s %s\n", entry.Emoji, entry.MoodName)
	return nil
}

type MoodTodayCmd struct{}

func (c *MoodTodayCmd) Run(ctx *Context) error {
	entry, err := ctx.Store.GetTodaysMoodEntry()
	if err != nil {
		fmt.Println("No mood logged today.")
		return nil
	}

	fmt.Printf("%s %s at %s\n", entry.Emoji, entry.MoodName, models.DisplayTime(entry.Timestamp))
	if entry.Note != "" {
		fmt.Printf("  %s\n", entry.Note)
	}
	return nil
}

type MoodListCmd struct {
	Days int `help:"Limit to entries from the last N days." default:"0"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	var entries []models.MoodEntry
	var err error

	if c.Days > 0 {
		end := models.TodayKey()
		start := time.Now().AddDate(0, 0, -(c.Days - 1)).Format(constants.DateFormat)
		entries, err = ctx.Store.GetMoodEntriesForRange(start, end)
	} else {
		entries, err = ctx.Store.GetMoodEntries()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%-9s %s  %s %s\n",
			models.DisplayDate(e.Timestamp), models.DisplayTime(e.Timestamp), e.Emoji, e.MoodName)
		if e.Note != "" {
			fmt.Printf("           %s\n", e.Note)
		}
	}
	return nil
}

type MoodClearCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *MoodClearCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete all mood entries?").
					Description("This cannot be undone.").
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

	if err := ctx.Store.ClearMoodEntries(); err != nil {
		return err
	}

	fmt.Println("Cleared all mood entries.")
	return nil
}
