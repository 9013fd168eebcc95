package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kbpkavisika/GearUp/internal/constants"
	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/notifier"
	"github.com/kbpkavisika/GearUp/internal/reminder"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Scheduler *reminder.Scheduler
	Notifier  *notifier.Notifier
}

// FindHabit resolves a habit by exact id, id prefix, or case-insensitive
// name, in that order. Ambiguous prefixes are rejected rather than
// guessed at.
func FindHabit(store storage.Provider, ref string) (models.Habit, error) {
	habits, err := store.GetHabits()
	if err != nil {
		return models.Habit{}, err
	}

	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}

	var matches []models.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.Habit{}, fmt.Errorf("habit id prefix %q is ambiguous (%d matches)", ref, len(matches))
	}

	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit %q: %w", ref, storage.ErrNotFound)
}

// IncrementHabitToday applies one unit of progress to the habit for
// today's date and persists the result.
func IncrementHabitToday(store storage.Provider, habit models.Habit) (models.HabitProgress, error) {
	today := models.TodayKey()
	progress, err := store.GetHabitProgressForDate(habit.ID, today)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return models.HabitProgress{}, err
		}
		progress = models.HabitProgress{HabitID: habit.ID, Date: today}
	}

	updated := models.Increment(habit, progress)
	if err := store.UpdateHabitProgress(updated); err != nil {
		return models.HabitProgress{}, err
	}
	return updated, nil
}

// SaveTodaysMood records a mood for today. At most one entry exists per
// day: a second save overwrites today's entry in place, keeping its id
// and position, with a fresh timestamp.
func SaveTodaysMood(store storage.Provider, emoji, note string) (models.MoodEntry, error) {
	mood, ok := models.MoodFromEmoji(emoji)
	if !ok {
		return models.MoodEntry{}, fmt.Errorf("unknown mood emoji %q", emoji)
	}

	entries, err := store.GetMoodEntries()
	if err != nil {
		return models.MoodEntry{}, err
	}

	today := models.TodayKey()
	for i, e := range entries {
		if e.Date == today {
			entries[i].Emoji = mood.Emoji
			entries[i].MoodName = mood.DisplayName
			entries[i].Note = note
			entries[i].Timestamp = models.CurrentTimestamp()
			if err := store.SaveMoodEntries(entries); err != nil {
				return models.MoodEntry{}, err
			}
			return entries[i], nil
		}
	}

	entry := models.NewMoodEntry(mood.Emoji, mood.DisplayName, note)
	if err := store.AddMoodEntry(entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// TodaysProgressByHabit loads today's progress keyed by habit id.
func TodaysProgressByHabit(store storage.Provider) (map[string]models.HabitProgress, error) {
	all, err := store.GetHabitProgress()
	if err != nil {
		return nil, err
	}

	today := models.TodayKey()
	byHabit := make(map[string]models.HabitProgress)
	for _, p := range all {
		if p.Date == today {
			byHabit[p.HabitID] = p
		}
	}
	return byHabit, nil
}

// FormatMinuteOfDay renders minutes-since-midnight as HH:MM.
func FormatMinuteOfDay(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseClock parses an HH:MM string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return reminder.MinuteOfDay(t), nil
}
