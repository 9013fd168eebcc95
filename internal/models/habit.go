package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbpkavisika/GearUp/internal/constants"
)

// Habit represents a trackable daily activity with a numeric target.
type Habit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetValue int    `json:"target_value"`
	Unit        string `json:"unit"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"is_active"`
	CreatedDate string `json:"created_date"` // YYYY-MM-DD format
}

// HabitProgress represents one habit's accumulated value for one calendar
// day. (HabitID, Date) is the natural key; at most one record exists per
// pair.
type HabitProgress struct {
	HabitID      string `json:"habit_id"`
	Date         string `json:"date"` // YYYY-MM-DD format
	CurrentValue int    `json:"current_value"`
	IsCompleted  bool   `json:"is_completed"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

// NewHabit creates a habit with a fresh id, stamped with today's date.
func NewHabit(name, description string, targetValue int, unit, icon string) Habit {
	return Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		TargetValue: targetValue,
		Unit:        unit,
		Icon:        icon,
		IsActive:    true,
		CreatedDate: CurrentDate(),
	}
}

// CurrentDate returns the local calendar date in canonical YYYY-MM-DD form.
// All date comparisons in the app are plain string compares on this form.
func CurrentDate() string {
	return time.Now().Format(constants.DateFormat)
}

// TodayKey is the natural key used for "today" lookups of progress and mood.
func TodayKey() string {
	return CurrentDate()
}

// CurrentTimestamp returns the local date+time in YYYY-MM-DD HH:MM:SS form.
func CurrentTimestamp() string {
	return time.Now().Format(constants.TimestampFormat)
}

// ProgressPercentage returns floor(current/target*100) clamped to [0,100].
// A non-positive target yields 0.
func ProgressPercentage(currentValue, targetValue int) int {
	if targetValue <= 0 {
		return 0
	}
	pct := currentValue * 100 / targetValue
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Percentage returns the progress percentage against the given target.
func (p HabitProgress) Percentage(targetValue int) int {
	return ProgressPercentage(p.CurrentValue, targetValue)
}

// Increment applies one unit of progress toward the habit's target. The new
// value is clamped to the target. CompletedAt is stamped exactly when the
// completed flag transitions on, and cleared whenever the record is not
// completed.
func Increment(habit Habit, progress HabitProgress) HabitProgress {
	newValue := progress.CurrentValue + 1
	if newValue > habit.TargetValue {
		newValue = habit.TargetValue
	}
	completed := newValue >= habit.TargetValue

	updated := progress
	updated.HabitID = habit.ID
	if updated.Date == "" {
		updated.Date = TodayKey()
	}
	updated.CurrentValue = newValue
	updated.IsCompleted = completed
	if completed {
		if !progress.IsCompleted {
			updated.CompletedAt = CurrentTimestamp()
		}
	} else {
		updated.CompletedAt = ""
	}
	return updated
}
