package storage

import (
	"errors"

	"github.com/kbpkavisika/GearUp/internal/models"
)

// ErrNotFound is returned when a requested record does not exist in the
// store. Callers treat it as "no record yet", not as a failure.
var ErrNotFound = errors.New("record not found")

// Provider is the record store contract. Collections are replaced whole on
// save; reads always return the authoritative stored state. Implementations
// are not safe for concurrent use by multiple goroutines without external
// synchronization.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Habits
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error
	// DeleteHabit removes the habit and every progress record referencing
	// it, for all dates.
	DeleteHabit(id string) error

	// Habit progress
	GetHabitProgress() ([]models.HabitProgress, error)
	SaveHabitProgress([]models.HabitProgress) error
	GetHabitProgressForDate(habitID, date string) (models.HabitProgress, error)
	// UpdateHabitProgress upserts on the (habitID, date) natural key.
	UpdateHabitProgress(models.HabitProgress) error
	ClearHabitProgress() error

	// Mood entries (newest-first)
	GetMoodEntries() ([]models.MoodEntry, error)
	SaveMoodEntries([]models.MoodEntry) error
	AddMoodEntry(models.MoodEntry) error
	GetTodaysMoodEntry() (models.MoodEntry, error)
	GetMoodEntriesForRange(startDate, endDate string) ([]models.MoodEntry, error)
	ClearMoodEntries() error

	// Utils
	GetConfigPath() string
}
