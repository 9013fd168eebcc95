package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbpkavisika/GearUp/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "gearup.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStoreInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearup.json")
	store := NewJSONStore(path)

	if err := store.Load(); err == nil {
		t.Error("Expected Load to fail before Init")
	}

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("Expected second Init to fail")
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestJSONStoreSettingsDefaults(t *testing.T) {
	store := newTestJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}

	if !settings.RemindersEnabled {
		t.Error("Expected reminders enabled by default")
	}
	if settings.ReminderIntervalMin != 60 {
		t.Errorf("Expected default interval 60, got %d", settings.ReminderIntervalMin)
	}
	if settings.ReminderStartMin != 480 {
		t.Errorf("Expected default start 480 (08:00), got %d", settings.ReminderStartMin)
	}
	if settings.ReminderEndMin != 1320 {
		t.Errorf("Expected default end 1320 (22:00), got %d", settings.ReminderEndMin)
	}
	if !settings.FirstLaunch {
		t.Error("Expected first launch true by default")
	}
}

func TestJSONStoreSettingsRoundtrip(t *testing.T) {
	store := newTestJSONStore(t)

	settings, _ := store.GetSettings()
	settings.RemindersEnabled = false
	settings.ReminderIntervalMin = 90
	settings.FirstLaunch = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.RemindersEnabled || got.ReminderIntervalMin != 90 || got.FirstLaunch {
		t.Errorf("Settings did not roundtrip: %+v", got)
	}
}

func TestJSONStoreDefaultHabits(t *testing.T) {
	store := newTestJSONStore(t)

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 5 {
		t.Fatalf("Expected 5 seeded habits, got %d", len(habits))
	}
	if habits[0].Name != "Drink Water" || habits[0].TargetValue != 8 {
		t.Errorf("Unexpected first seeded habit: %+v", habits[0])
	}

	// An explicitly saved empty collection stays empty; the seed only
	// applies while nothing has ever been saved.
	if err := store.SaveHabits([]models.Habit{}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}
	habits, err = store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("Expected empty collection after saving empty list, got %d habits", len(habits))
	}
}

func TestJSONStoreHabitsRoundtrip(t *testing.T) {
	store := newTestJSONStore(t)

	habit := models.NewHabit("Stretch", "Morning stretches", 10, "minutes", "🤸")
	if err := store.SaveHabits([]models.Habit{habit}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	habits, err := reopened.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != habit.ID || habits[0].Name != "Stretch" {
		t.Errorf("Habits did not roundtrip: %+v", habits)
	}
}

func TestJSONStoreUpdateHabitProgressUpsert(t *testing.T) {
	store := newTestJSONStore(t)

	progress := models.HabitProgress{HabitID: "h1", Date: "2024-05-01", CurrentValue: 1}
	if err := store.UpdateHabitProgress(progress); err != nil {
		t.Fatalf("UpdateHabitProgress failed: %v", err)
	}

	progress.CurrentValue = 2
	if err := store.UpdateHabitProgress(progress); err != nil {
		t.Fatalf("UpdateHabitProgress failed: %v", err)
	}

	all, err := store.GetHabitProgress()
	if err != nil {
		t.Fatalf("GetHabitProgress failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected one record per (habit, date) pair, got %d", len(all))
	}
	if all[0].CurrentValue != 2 {
		t.Errorf("Expected current value 2, got %d", all[0].CurrentValue)
	}

	got, err := store.GetHabitProgressForDate("h1", "2024-05-01")
	if err != nil {
		t.Fatalf("GetHabitProgressForDate failed: %v", err)
	}
	if got.CurrentValue != 2 {
		t.Errorf("Expected current value 2, got %d", got.CurrentValue)
	}

	if _, err := store.GetHabitProgressForDate("h1", "2024-05-02"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing date, got %v", err)
	}
}

func TestJSONStoreDeleteHabitCascades(t *testing.T) {
	store := newTestJSONStore(t)

	keep := models.NewHabit("Keep", "", 1, "times", "✅")
	drop := models.NewHabit("Drop", "", 1, "times", "❌")
	if err := store.SaveHabits([]models.Habit{keep, drop}); err != nil {
		t.Fatalf("SaveHabits failed: %v", err)
	}

	for _, p := range []models.HabitProgress{
		{HabitID: keep.ID, Date: "2024-05-01", CurrentValue: 1},
		{HabitID: drop.ID, Date: "2024-05-01", CurrentValue: 1},
		{HabitID: drop.ID, Date: "2024-05-02", CurrentValue: 1},
	} {
		if err := store.UpdateHabitProgress(p); err != nil {
			t.Fatalf("UpdateHabitProgress failed: %v", err)
		}
	}

	if err := store.DeleteHabit(drop.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	habits, _ := store.GetHabits()
	if len(habits) != 1 || habits[0].ID != keep.ID {
		t.Errorf("Expected only the kept habit, got %+v", habits)
	}

	progress, _ := store.GetHabitProgress()
	if len(progress) != 1 || progress[0].HabitID != keep.ID {
		t.Errorf("Expected cascade to remove all dropped habit progress, got %+v", progress)
	}

	if err := store.DeleteHabit("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing habit, got %v", err)
	}
}

func TestJSONStoreMoodEntries(t *testing.T) {
	store := newTestJSONStore(t)

	first := models.NewMoodEntry("😊", "Happy", "")
	second := models.NewMoodEntry("😴", "Tired", "long day")
	if err := store.AddMoodEntry(first); err != nil {
		t.Fatalf("AddMoodEntry failed: %v", err)
	}
	if err := store.AddMoodEntry(second); err != nil {
		t.Fatalf("AddMoodEntry failed: %v", err)
	}

	entries, err := store.GetMoodEntries()
	if err != nil {
		t.Fatalf("GetMoodEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Error("Expected newest entry first")
	}

	today, err := store.GetTodaysMoodEntry()
	if err != nil {
		t.Fatalf("GetTodaysMoodEntry failed: %v", err)
	}
	if today.ID != second.ID {
		t.Errorf("Expected first match for today, got %+v", today)
	}

	if err := store.ClearMoodEntries(); err != nil {
		t.Fatalf("ClearMoodEntries failed: %v", err)
	}
	entries, _ = store.GetMoodEntries()
	if len(entries) != 0 {
		t.Errorf("Expected no entries after clear, got %d", len(entries))
	}
}

func TestJSONStoreMoodEntriesForRange(t *testing.T) {
	store := newTestJSONStore(t)

	entries := []models.MoodEntry{
		{ID: "a", Emoji: "😊", MoodName: "Happy", Timestamp: "2024-05-03 10:00:00", Date: "2024-05-03"},
		{ID: "b", Emoji: "😐", MoodName: "Neutral", Timestamp: "2024-05-02 10:00:00", Date: "2024-05-02"},
		{ID: "c", Emoji: "😢", MoodName: "Sad", Timestamp: "2024-04-20 10:00:00", Date: "2024-04-20"},
	}
	if err := store.SaveMoodEntries(entries); err != nil {
		t.Fatalf("SaveMoodEntries failed: %v", err)
	}

	got, err := store.GetMoodEntriesForRange("2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("GetMoodEntriesForRange failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries in range, got %d", len(got))
	}
	for _, e := range got {
		if e.ID == "c" {
			t.Error("Entry outside range included")
		}
	}
}

func TestJSONStoreCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearup.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Expected corrupt store to load with defaults, got error: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.ReminderIntervalMin != 60 {
		t.Errorf("Expected default settings, got %+v", settings)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 5 {
		t.Errorf("Expected seeded default habits, got %d", len(habits))
	}
}

func TestJSONStoreCorruptSlotLeavesOthersIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearup.json")
	blob := `{
		"version": 1,
		"settings": {"reminders_enabled": false, "reminder_interval": 45, "reminder_start_time": 480, "reminder_end_time": 1320, "first_launch": false},
		"habits": "this is not a habit list",
		"mood_entries": [{"id": "m1", "emoji": "😊", "mood_name": "Happy", "note": "", "timestamp": "2024-05-01 09:00:00", "date": "2024-05-01"}]
	}`
	if err := os.WriteFile(path, []byte(blob), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Corrupt habits slot degrades to the seeded defaults.
	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits failed: %v", err)
	}
	if len(habits) != 5 {
		t.Errorf("Expected seeded default habits, got %d", len(habits))
	}

	// The healthy slots are unaffected.
	settings, _ := store.GetSettings()
	if settings.RemindersEnabled || settings.ReminderIntervalMin != 45 {
		t.Errorf("Expected stored settings preserved, got %+v", settings)
	}
	entries, _ := store.GetMoodEntries()
	if len(entries) != 1 || entries[0].ID != "m1" {
		t.Errorf("Expected stored mood entries preserved, got %+v", entries)
	}
}

func TestJSONStoreClearHabitProgress(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.UpdateHabitProgress(models.HabitProgress{HabitID: "h1", Date: "2024-05-01", CurrentValue: 3}); err != nil {
		t.Fatalf("UpdateHabitProgress failed: %v", err)
	}
	if err := store.ClearHabitProgress(); err != nil {
		t.Fatalf("ClearHabitProgress failed: %v", err)
	}

	progress, _ := store.GetHabitProgress()
	if len(progress) != 0 {
		t.Errorf("Expected no progress after clear, got %d", len(progress))
	}
}
