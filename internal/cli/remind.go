package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbpkavisika/GearUp/internal/logger"
	"github.com/kbpkavisika/GearUp/internal/reminder"
)

type RemindCmd struct {
	On     RemindOnCmd     `cmd:"" help:"Enable hydration reminders."`
	Off    RemindOffCmd    `cmd:"" help:"Disable hydration reminders."`
	Set    RemindSetCmd    `cmd:"" help:"Configure reminder interval and active window."`
	Status RemindStatusCmd `cmd:"" help:"Show reminder configuration."`
	Start  RemindStartCmd  `cmd:"" help:"Run the reminder loop in the foreground."`
	Drank  RemindDrankCmd  `cmd:"" help:"Log a glass of water against the water habit."`
}

type RemindOnCmd struct{}

func (c *RemindOnCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.RemindersEnabled = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Reminders enabled: every %d min between %s and %s.\n",
		settings.ReminderIntervalMin,
		FormatMinuteOfDay(settings.ReminderStartMin),
		FormatMinuteOfDay(settings.ReminderEndMin))
	fmt.Println("Run `gearup remind start` to run the reminder loop.")
	return nil
}

type RemindOffCmd struct{}

func (c *RemindOffCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.RemindersEnabled = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	ctx.Scheduler.Cancel()
	fmt.Println("Reminders disabled.")
	return nil
}

type RemindSetCmd struct {
	Interval *int    `help:"Minutes between reminders."`
	Start    *string `help:"Window start in HH:MM."`
	End      *string `help:"Window end in HH:MM."`
}

func (c *RemindSetCmd) Run(ctx *Context) error {
	if c.Interval == nil && c.Start == nil && c.End == nil {
		return fmt.Errorf("nothing to set, pass --interval, --start, or --end")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Interval != nil {
		if *c.Interval <= 0 {
			return fmt.Errorf("interval must be positive, got %d", *c.Interval)
		}
		settings.ReminderIntervalMin = *c.Interval
	}
	if c.Start != nil {
		minute, err := ParseClock(*c.Start)
		if err != nil {
			return err
		}
		settings.ReminderStartMin = minute
	}
	if c.End != nil {
		minute, err := ParseClock(*c.End)
		if err != nil {
			return err
		}
		settings.ReminderEndMin = minute
	}

	if settings.ReminderStartMin > settings.ReminderEndMin {
		fmt.Println("Warning: window start is after window end; no reminders will fall inside the window.")
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Reminder settings: every %d min between %s and %s.\n",
		settings.ReminderIntervalMin,
		FormatMinuteOfDay(settings.ReminderStartMin),
		FormatMinuteOfDay(settings.ReminderEndMin))
	return nil
}

type RemindStatusCmd struct{}

func (c *RemindStatusCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	state := "disabled"
	if settings.RemindersEnabled {
		state = "enabled"
	}
	fmt.Printf("Reminders:  %s\n", state)
	fmt.Printf("Interval:   every %d min\n", settings.ReminderIntervalMin)
	fmt.Printf("Window:     %s – %s\n",
		FormatMinuteOfDay(settings.ReminderStartMin),
		FormatMinuteOfDay(settings.ReminderEndMin))

	nowMinute := reminder.MinuteOfDay(time.Now())
	if reminder.ShouldNotifyNow(settings, nowMinute) {
		fmt.Println("Right now:  inside the active window")
	} else {
		fmt.Println("Right now:  outside the active window")
	}

	if settings.RemindersEnabled {
		delay := reminder.ComputeInitialDelay(settings.ReminderStartMin, nowMinute)
		fmt.Printf("Next start: in %dh%02dm\n", delay/60, delay%60)
	}
	return nil
}

type RemindStartCmd struct{}

func (c *RemindStartCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.RemindersEnabled {
		return fmt.Errorf("reminders are disabled, run `gearup remind on` first")
	}

	ctx.Scheduler.Schedule(settings)
	logger.Info("reminder loop started",
		"interval_min", settings.ReminderIntervalMin,
		"window_start", FormatMinuteOfDay(settings.ReminderStartMin),
		"window_end", FormatMinuteOfDay(settings.ReminderEndMin))

	fmt.Printf("Reminder loop running: every %d min between %s and %s. Press Ctrl+C to stop.\n",
		settings.ReminderIntervalMin,
		FormatMinuteOfDay(settings.ReminderStartMin),
		FormatMinuteOfDay(settings.ReminderEndMin))

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done

	ctx.Scheduler.Cancel()
	fmt.Println("\nReminder loop stopped.")
	return nil
}

type RemindDrankCmd struct{}

func (c *RemindDrankCmd) Run(ctx *Context) error {
	habit, progress, err := reminder.MarkWater(ctx.Store)
	if err != nil {
		return err
	}

	if progress.IsCompleted {
		fmt.Printf("%s %d/%d %s — hydration goal reached! 🎉\n",
			habit.Icon, progress.CurrentValue, habit.TargetValue, habit.Unit)
	} else {
		fmt.Printf("%s %d/%d %s\n", habit.Icon, progress.CurrentValue, habit.TargetValue, habit.Unit)
	}
	return nil
}
