package storage

import (
	"github.com/kbpkavisika/GearUp/internal/constants"
	"github.com/kbpkavisika/GearUp/internal/models"
)

// Settings is the persisted singleton of reminder configuration plus the
// first-launch flag. It is passed explicitly to the scheduler and
// aggregator rather than read from ambient state.
type Settings struct {
	RemindersEnabled    bool `json:"reminders_enabled"`
	ReminderIntervalMin int  `json:"reminder_interval"`
	ReminderStartMin    int  `json:"reminder_start_time"` // minutes since local midnight
	ReminderEndMin      int  `json:"reminder_end_time"`   // minutes since local midnight
	FirstLaunch         bool `json:"first_launch"`
}

// DefaultSettings returns the documented settings defaults.
func DefaultSettings() Settings {
	return Settings{
		RemindersEnabled:    constants.DefaultRemindersEnabled,
		ReminderIntervalMin: constants.DefaultReminderIntervalMin,
		ReminderStartMin:    constants.DefaultReminderStartMin,
		ReminderEndMin:      constants.DefaultReminderEndMin,
		FirstLaunch:         true,
	}
}

// DefaultHabits is the seed set used only when the habit collection has
// never been saved.
func DefaultHabits() []models.Habit {
	return []models.Habit{
		models.NewHabit("Drink Water", "Stay hydrated throughout the day", 8, "glasses", "💧"),
		models.NewHabit("Exercise", "Daily physical activity", 30, "minutes", "🏃"),
		models.NewHabit("Meditation", "Mindfulness and relaxation", 15, "minutes", "🧘"),
		models.NewHabit("Reading", "Learn something new", 30, "minutes", "📚"),
		models.NewHabit("Sleep", "Get quality rest", 8, "hours", "😴"),
	}
}
