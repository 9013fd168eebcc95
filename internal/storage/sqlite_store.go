package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/kbpkavisika/GearUp/internal/models"
)

// Settings are persisted as one row per scalar, mirroring the flat
// key-value layout of the JSON store.
const (
	settingRemindersEnabled  = "reminders_enabled"
	settingReminderInterval  = "reminder_interval"
	settingReminderStartTime = "reminder_start_time"
	settingReminderEndTime   = "reminder_end_time"
	settingFirstLaunch       = "first_launch"

	// Distinguishes "collection saved as empty" from "never saved"; the
	// seeded default habits are served only in the latter case.
	settingHabitsSaved = "habits_saved"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		target_value INTEGER NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_date TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS habit_progress (
		habit_id TEXT NOT NULL,
		day TEXT NOT NULL,
		current_value INTEGER NOT NULL DEFAULT 0,
		is_completed INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (habit_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id TEXT PRIMARY KEY,
		emoji TEXT NOT NULL,
		mood_name TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL,
		day TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,
}

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'gearup init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema statements are idempotent; running them on load covers
	// databases created by older versions.
	return s.createSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) createSchema() error {
	for _, stmt := range sqliteSchema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) getSettingValue(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) setSettingValue(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	settings := DefaultSettings()

	bools := map[string]*bool{
		settingRemindersEnabled: &settings.RemindersEnabled,
		settingFirstLaunch:      &settings.FirstLaunch,
	}
	for key, target := range bools {
		value, ok, err := s.getSettingValue(key)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		if ok {
			*target = value == "true"
		}
	}

	ints := map[string]*int{
		settingReminderInterval:  &settings.ReminderIntervalMin,
		settingReminderStartTime: &settings.ReminderStartMin,
		settingReminderEndTime:   &settings.ReminderEndMin,
	}
	for key, target := range ints {
		value, ok, err := s.getSettingValue(key)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	values := map[string]string{
		settingRemindersEnabled:  strconv.FormatBool(settings.RemindersEnabled),
		settingReminderInterval:  strconv.Itoa(settings.ReminderIntervalMin),
		settingReminderStartTime: strconv.Itoa(settings.ReminderStartMin),
		settingReminderEndTime:   strconv.Itoa(settings.ReminderEndMin),
		settingFirstLaunch:       strconv.FormatBool(settings.FirstLaunch),
	}
	for key, value := range values {
		if err := s.setSettingValue(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	_, saved, err := s.getSettingValue(settingHabitsSaved)
	if err != nil {
		return nil, fmt.Errorf("failed to check habit seed marker: %w", err)
	}
	if !saved {
		return DefaultHabits(), nil
	}

	rows, err := s.db.Query(
		`SELECT id, name, description, target_value, unit, icon, is_active, created_date
		 FROM habits ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		var h models.Habit
		var active int
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.TargetValue, &h.Unit, &h.Icon, &active, &h.CreatedDate); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		h.IsActive = active != 0
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	for i, h := range habits {
		active := 0
		if h.IsActive {
			active = 1
		}
		_, err := tx.Exec(
			`INSERT INTO habits (id, name, description, target_value, unit, icon, is_active, created_date, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, h.TargetValue, h.Unit, h.Icon, active, h.CreatedDate, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert habit: %w", err)
		}
	}
	if _, err := tx.Exec(
		`INSERT INTO settings (key, value) VALUES (?, 'true')
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		settingHabitsSaved,
	); err != nil {
		return fmt.Errorf("failed to mark habits saved: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Materialize the seeded defaults first so deleting from a never-saved
	// collection behaves like the JSON store.
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

	if err := s.SaveHabits(remaining); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM habit_progress WHERE habit_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete habit progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetHabitProgress() ([]models.HabitProgress, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		`SELECT habit_id, day, current_value, is_completed, completed_at
		 FROM habit_progress ORDER BY day, habit_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit progress: %w", err)
	}
	defer rows.Close()

	progress := make([]models.HabitProgress, 0)
	for rows.Next() {
		var p models.HabitProgress
		var completed int
		if err := rows.Scan(&p.HabitID, &p.Date, &p.CurrentValue, &completed, &p.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit progress: %w", err)
		}
		p.IsCompleted = completed != 0
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (s *SQLiteStore) SaveHabitProgress(progress []models.HabitProgress) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_progress`); err != nil {
		return fmt.Errorf("failed to clear habit progress: %w", err)
	}
	for _, p := range progress {
		completed := 0
		if p.IsCompleted {
			completed = 1
		}
		_, err := tx.Exec(
			`INSERT INTO habit_progress (habit_id, day, current_value, is_completed, completed_at)
			 VALUES (?, ?, ?, ?, ?)`,
			p.HabitID, p.Date, p.CurrentValue, completed, p.CompletedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert habit progress: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetHabitProgressForDate(habitID, date string) (models.HabitProgress, error) {
	if s.db == nil {
		return models.HabitProgress{}, fmt.Errorf("storage not loaded")
	}

	var p models.HabitProgress
	var completed int
	err := s.db.QueryRow(
		`SELECT habit_id, day, current_value, is_completed, completed_at
		 FROM habit_progress WHERE habit_id = ? AND day = ?`,
		habitID, date,
	).Scan(&p.HabitID, &p.Date, &p.CurrentValue, &completed, &p.CompletedAt)
	if err == sql.ErrNoRows {
		return models.HabitProgress{}, fmt.Errorf("progress for habit %s on %s: %w", habitID, date, ErrNotFound)
	}
	if err != nil {
		return models.HabitProgress{}, fmt.Errorf("failed to query habit progress: %w", err)
	}
	p.IsCompleted = completed != 0
	return p, nil
}

func (s *SQLiteStore) UpdateHabitProgress(progress models.HabitProgress) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	completed := 0
	if progress.IsCompleted {
		completed = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO habit_progress (habit_id, day, current_value, is_completed, completed_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (habit_id, day) DO UPDATE SET
			current_value = excluded.current_value,
			is_completed = excluded.is_completed,
			completed_at = excluded.completed_at`,
		progress.HabitID, progress.Date, progress.CurrentValue, completed, progress.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert habit progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearHabitProgress() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec(`DELETE FROM habit_progress`); err != nil {
		return fmt.Errorf("failed to clear habit progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		`SELECT id, emoji, mood_name, note, timestamp, day
		 FROM mood_entries ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.MoodEntry, 0)
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.Emoji, &e.MoodName, &e.Note, &e.Timestamp, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) SaveMoodEntries(entries []models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM mood_entries`); err != nil {
		return fmt.Errorf("failed to clear mood entries: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO mood_entries (id, emoji, mood_name, note, timestamp, day, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Emoji, e.MoodName, e.Note, e.Timestamp, e.Date, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert mood entry: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddMoodEntry(entry models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE mood_entries SET position = position + 1`); err != nil {
		return fmt.Errorf("failed to shift mood entries: %w", err)
	}
	_, err = tx.Exec(
		`INSERT INTO mood_entries (id, emoji, mood_name, note, timestamp, day, position)
		 VALUES (?, ?, ?, ?, ?, ?, 0)`,
		entry.ID, entry.Emoji, entry.MoodName, entry.Note, entry.Timestamp, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetTodaysMoodEntry() (models.MoodEntry, error) {
	if s.db == nil {
		return models.MoodEntry{}, fmt.Errorf("storage not loaded")
	}

	today := models.TodayKey()
	var e models.MoodEntry
	err := s.db.QueryRow(
		`SELECT id, emoji, mood_name, note, timestamp, day
		 FROM mood_entries WHERE day = ? ORDER BY position LIMIT 1`,
		today,
	).Scan(&e.ID, &e.Emoji, &e.MoodName, &e.Note, &e.Timestamp, &e.Date)
	if err == sql.ErrNoRows {
		return models.MoodEntry{}, fmt.Errorf("mood entry for %s: %w", today, ErrNotFound)
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to query mood entry: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) GetMoodEntriesForRange(startDate, endDate string) ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(
		`SELECT id, emoji, mood_name, note, timestamp, day
		 FROM mood_entries WHERE day >= ? AND day <= ? ORDER BY position`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.MoodEntry, 0)
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.Emoji, &e.MoodName, &e.Note, &e.Timestamp, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) ClearMoodEntries() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec(`DELETE FROM mood_entries`); err != nil {
		return fmt.Errorf("failed to clear mood entries: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
