package system

import (
	"testing"
	"time"

	"github.com/kbpkavisika/GearUp/internal/reminder"
)

func TestNotifyCmd_DryRunRespectsSettings(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}

	// Pin the window around the current minute so the dry run is
	// deterministic regardless of when the test executes.
	nowMinute := reminder.MinuteOfDay(time.Now())
	settings.ReminderStartMin = 0
	settings.ReminderEndMin = 1439
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	cmd := &NotifyCmd{DryRun: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("dry run inside window failed: %v", err)
	}

	// Shrink the window to exclude the current minute.
	settings.ReminderStartMin = (nowMinute + 2) % 1440
	settings.ReminderEndMin = settings.ReminderStartMin
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("dry run outside window failed: %v", err)
	}

	// Disabled reminders never notify, in or out of window.
	settings.RemindersEnabled = false
	settings.ReminderStartMin = 0
	settings.ReminderEndMin = 1439
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("dry run with reminders disabled failed: %v", err)
	}
}
