package reminder

import (
	"fmt"
	"time"

	"github.com/kbpkavisika/GearUp/internal/constants"
	"github.com/kbpkavisika/GearUp/internal/logger"
	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

// NotifyFunc delivers one reminder message to the user.
type NotifyFunc func(message string) error

// Scheduler controls the single recurring hydration reminder task.
type Scheduler struct {
	runner Runner
	notify NotifyFunc
	now    func() time.Time
}

func New(runner Runner, notify NotifyFunc) *Scheduler {
	return &Scheduler{
		runner: runner,
		notify: notify,
		now:    time.Now,
	}
}

// Schedule (re)registers the recurring reminder according to settings.
// Disabled reminders are equivalent to Cancel. Re-scheduling fully
// replaces any previous registration under the reminder's logical name,
// so at most one recurring reminder exists system-wide.
func (s *Scheduler) Schedule(settings storage.Settings) {
	if !settings.RemindersEnabled {
		s.Cancel()
		return
	}

	nowMinute := MinuteOfDay(s.now())
	delay := time.Duration(ComputeInitialDelay(settings.ReminderStartMin, nowMinute)) * time.Minute
	interval := time.Duration(settings.ReminderIntervalMin) * time.Minute

	logger.Info("scheduling hydration reminders",
		"interval_min", settings.ReminderIntervalMin,
		"initial_delay_min", int(delay.Minutes()),
	)
	s.runner.Register(constants.HydrationWorkName, interval, delay, s.fire)
}

// Cancel unregisters the recurring reminder. Calling it when nothing is
// registered is a no-op.
func (s *Scheduler) Cancel() {
	s.runner.Cancel(constants.HydrationWorkName)
}

// IsScheduled reports whether the recurring reminder is currently
// registered.
func (s *Scheduler) IsScheduled() bool {
	return s.runner.IsRegistered(constants.HydrationWorkName)
}

// fire delivers one randomly chosen hydration message. The active window
// gates only when the periodic task starts (via the initial delay); a
// fired tick always attempts delivery, so a reminder can drift past the
// window end until the next day's start boundary.
func (s *Scheduler) fire() {
	message := RandomMessage()
	if err := s.notify(message); err != nil {
		logger.Warn("failed to deliver hydration reminder", "err", err)
	}
}

// ComputeInitialDelay returns the minutes to wait before the first firing:
// until startMinute today if it is still ahead, otherwise until
// startMinute tomorrow.
func ComputeInitialDelay(startMinute, currentMinute int) int {
	if currentMinute < startMinute {
		return startMinute - currentMinute
	}
	minutesUntilMidnight := constants.MinutesPerDay - currentMinute
	return minutesUntilMidnight + startMinute
}

// ShouldNotifyNow reports whether a notification may be surfaced at the
// given minute of day: reminders enabled and the minute inside the closed
// [start, end] window. A window with start > end has an empty active set
// under this test.
func ShouldNotifyNow(settings storage.Settings, nowMinute int) bool {
	if !settings.RemindersEnabled {
		return false
	}
	return nowMinute >= settings.ReminderStartMin && nowMinute <= settings.ReminderEndMin
}

// MinuteOfDay converts a wall-clock time to minutes since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// NextReminderTime formats the next expected firing (now + interval) as
// HH:MM for display.
func NextReminderTime(settings storage.Settings, now time.Time) string {
	if !settings.RemindersEnabled {
		return "Reminders disabled"
	}
	next := now.Add(time.Duration(settings.ReminderIntervalMin) * time.Minute)
	return next.Format(constants.TimeFormat)
}

// MarkWater routes the notification's "mark habit complete" action into
// the water-tracking habit's increment for today.
func MarkWater(store storage.Provider) (models.Habit, models.HabitProgress, error) {
	habits, err := store.GetHabits()
	if err != nil {
		return models.Habit{}, models.HabitProgress{}, err
	}

	var water *models.Habit
	for i, h := range habits {
		if h.Icon == "💧" {
			water = &habits[i]
			break
		}
	}
	if water == nil {
		for i, h := range habits {
			if h.Name == "Drink Water" {
				water = &habits[i]
				break
			}
		}
	}
	if water == nil {
		return models.Habit{}, models.HabitProgress{}, fmt.Errorf("water habit: %w", storage.ErrNotFound)
	}

	today := models.TodayKey()
	progress, err := store.GetHabitProgressForDate(water.ID, today)
	if err != nil {
		progress = models.HabitProgress{HabitID: water.ID, Date: today}
	}

	updated := models.Increment(*water, progress)
	if err := store.UpdateHabitProgress(updated); err != nil {
		return models.Habit{}, models.HabitProgress{}, err
	}
	return *water, updated, nil
}
