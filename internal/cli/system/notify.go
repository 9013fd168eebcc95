package system

import (
	"fmt"
	"time"

	"github.com/kbpkavisika/GearUp/internal/cli"
	"github.com/kbpkavisika/GearUp/internal/reminder"
)

// NotifyCmd sends a single hydration reminder, intended for external
// schedulers (cron, systemd timers) as an alternative to `remind start`.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	nowMinute := reminder.MinuteOfDay(time.Now())
	if !reminder.ShouldNotifyNow(settings, nowMinute) {
		if c.DryRun {
			if !settings.RemindersEnabled {
				fmt.Println("Reminders are disabled in settings.")
			} else {
				fmt.Printf("Outside the reminder window (%s – %s).\n",
					cli.FormatMinuteOfDay(settings.ReminderStartMin),
					cli.FormatMinuteOfDay(settings.ReminderEndMin))
			}
		}
		return nil
	}

	message := reminder.RandomMessage()
	if c.DryRun {
		fmt.Printf("Would notify: %s\n", message)
		return nil
	}

	return ctx.Notifier.Notify(message)
}
