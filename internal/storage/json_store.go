package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kbpkavisika/GearUp/internal/logger"
	"github.com/kbpkavisika/GearUp/internal/models"
)

// storeFile is the on-disk layout: named slots decoded independently so a
// corrupt collection blob degrades to its default without taking the other
// collections down with it.
type storeFile struct {
	Version       int             `json:"version"`
	Settings      json.RawMessage `json:"settings,omitempty"`
	Habits        json.RawMessage `json:"habits,omitempty"`
	HabitProgress json.RawMessage `json:"habit_progress,omitempty"`
	MoodEntries   json.RawMessage `json:"mood_entries,omitempty"`
}

type storeData struct {
	Settings Settings
	// Habits stays nil until the collection is first saved; reads serve the
	// seeded defaults while it is nil.
	Habits        []models.Habit
	HabitProgress []models.HabitProgress
	MoodEntries   []models.MoodEntry
}

type JSONStore struct {
	path  string
	store *storeData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &storeData{
		Settings: DefaultSettings(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'gearup init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		// A corrupt store is treated as absent rather than fatal; every
		// collection falls back to its documented default.
		logger.Warn("storage file unparsable, falling back to defaults", "path", s.path, "err", err)
		file = storeFile{}
	}

	s.store = &storeData{
		Settings: DefaultSettings(),
	}
	if file.Settings != nil {
		if err := json.Unmarshal(file.Settings, &s.store.Settings); err != nil {
			logger.Warn("settings slot unparsable, using defaults", "err", err)
			s.store.Settings = DefaultSettings()
		}
	}
	if file.Habits != nil {
		if err := json.Unmarshal(file.Habits, &s.store.Habits); err != nil {
			logger.Warn("habits slot unparsable, using seeded defaults", "err", err)
			s.store.Habits = nil
		}
	}
	if file.HabitProgress != nil {
		if err := json.Unmarshal(file.HabitProgress, &s.store.HabitProgress); err != nil {
			logger.Warn("habit progress slot unparsable, using empty list", "err", err)
			s.store.HabitProgress = nil
		}
	}
	if file.MoodEntries != nil {
		if err := json.Unmarshal(file.MoodEntries, &s.store.MoodEntries); err != nil {
			logger.Warn("mood entries slot unparsable, using empty list", "err", err)
			s.store.MoodEntries = nil
		}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	file := storeFile{Version: 1}

	var err error
	if file.Settings, err = json.Marshal(s.store.Settings); err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if s.store.Habits != nil {
		if file.Habits, err = json.Marshal(s.store.Habits); err != nil {
			return fmt.Errorf("failed to serialize habits: %w", err)
		}
	}
	if s.store.HabitProgress != nil {
		if file.HabitProgress, err = json.Marshal(s.store.HabitProgress); err != nil {
			return fmt.Errorf("failed to serialize habit progress: %w", err)
		}
	}
	if s.store.MoodEntries != nil {
		if file.MoodEntries, err = json.Marshal(s.store.MoodEntries); err != nil {
			return fmt.Errorf("failed to serialize mood entries: %w", err)
		}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if s.store.Habits == nil {
		return DefaultHabits(), nil
	}

	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	s.store.Habits = habits
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	habits, err := s.GetHabits()
	if err != nil {
		return err
	}

	remaining := make([]models.Habit, 0, len(habits))
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, h)
	}
	if !found {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	s.store.Habits = remaining

	// Cascade: drop every progress record for the habit, all dates.
	progress := make([]models.HabitProgress, 0, len(s.store.HabitProgress))
	for _, p := range s.store.HabitProgress {
		if p.HabitID != id {
			progress = append(progress, p)
		}
	}
	s.store.HabitProgress = progress

	return s.save()
}

func (s *JSONStore) GetHabitProgress() ([]models.HabitProgress, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	progress := make([]models.HabitProgress, len(s.store.HabitProgress))
	copy(progress, s.store.HabitProgress)
	return progress, nil
}

func (s *JSONStore) SaveHabitProgress(progress []models.HabitProgress) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if progress == nil {
		progress = []models.HabitProgress{}
	}
	s.store.HabitProgress = progress
	return s.save()
}

func (s *JSONStore) GetHabitProgressForDate(habitID, date string) (models.HabitProgress, error) {
	if s.store == nil {
		return models.HabitProgress{}, fmt.Errorf("storage not loaded")
	}

	for _, p := range s.store.HabitProgress {
		if p.HabitID == habitID && p.Date == date {
			return p, nil
		}
	}
	return models.HabitProgress{}, fmt.Errorf("progress for habit %s on %s: %w", habitID, date, ErrNotFound)
}

func (s *JSONStore) UpdateHabitProgress(progress models.HabitProgress) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, p := range s.store.HabitProgress {
		if p.HabitID == progress.HabitID && p.Date == progress.Date {
			s.store.HabitProgress[i] = progress
			return s.save()
		}
	}
	s.store.HabitProgress = append(s.store.HabitProgress, progress)
	return s.save()
}

func (s *JSONStore) ClearHabitProgress() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.HabitProgress = nil
	return s.save()
}

func (s *JSONStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.MoodEntry, len(s.store.MoodEntries))
	copy(entries, s.store.MoodEntries)
	return entries, nil
}

func (s *JSONStore) SaveMoodEntries(entries []models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	s.store.MoodEntries = entries
	return s.save()
}

func (s *JSONStore) AddMoodEntry(entry models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	// Newest first.
	s.store.MoodEntries = append([]models.MoodEntry{entry}, s.store.MoodEntries...)
	return s.save()
}

func (s *JSONStore) GetTodaysMoodEntry() (models.MoodEntry, error) {
	if s.store == nil {
		return models.MoodEntry{}, fmt.Errorf("storage not loaded")
	}

	today := models.TodayKey()
	for _, e := range s.store.MoodEntries {
		if e.Date == today {
			return e, nil
		}
	}
	return models.MoodEntry{}, fmt.Errorf("mood entry for %s: %w", today, ErrNotFound)
}

func (s *JSONStore) GetMoodEntriesForRange(startDate, endDate string) ([]models.MoodEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.MoodEntry, 0)
	for _, e := range s.store.MoodEntries {
		if e.Date >= startDate && e.Date <= endDate {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (s *JSONStore) ClearMoodEntries() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.MoodEntries = nil
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
