package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbpkavisika/GearUp/internal/cli"
	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/notifier"
	"github.com/kbpkavisika/GearUp/internal/progress"
	"github.com/kbpkavisika/GearUp/internal/reminder"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)

	ctx := &cli.Context{
		Store:     store,
		Scheduler: reminder.New(reminder.NewTickerRunner(), func(string) error { return nil }),
		Notifier:  notifier.New(),
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return ctx, dbPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 5 {
		t.Errorf("seeded %d habits, want 5", len(habits))
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.FirstLaunch {
		t.Error("init should flip the first-launch flag")
	}
	if !settings.RemindersEnabled {
		t.Error("reminders should default to enabled")
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	// Record some progress, then re-init without --force. Existing data
	// must survive.
	habits, err := ctx.Store.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cli.IncrementHabitToday(ctx.Store, habits[0]); err != nil {
		t.Fatal(err)
	}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	progress, err := ctx.Store.GetHabitProgress()
	if err != nil {
		t.Fatal(err)
	}
	if len(progress) != 1 {
		t.Errorf("re-init without --force lost progress, have %d records", len(progress))
	}
}

func TestInitCmd_SeededProgressSurvivesReopen(t *testing.T) {
	ctx, dbPath := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	var water models.Habit
	for _, h := range habits {
		if h.Icon == "💧" {
			water = h
		}
	}
	if water.ID == "" {
		t.Fatal("expected a seeded water habit")
	}

	for i := 0; i < water.TargetValue; i++ {
		if _, err := cli.IncrementHabitToday(ctx.Store, water); err != nil {
			t.Fatal(err)
		}
	}
	if err := ctx.Store.Close(); err != nil {
		t.Fatal(err)
	}

	// A fresh process opening the same storage must see the same habit
	// ids and the completion recorded against them.
	reopened := storage.NewSQLiteStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	again, err := reopened.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != len(habits) {
		t.Fatalf("reopened store has %d habits, want %d", len(again), len(habits))
	}
	for i := range habits {
		if again[i].ID != habits[i].ID {
			t.Errorf("habit id changed across reopen: was %s, now %s", habits[i].ID, again[i].ID)
		}
	}

	summary, err := progress.TodaySummary(reopened)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Completed != 1 {
		t.Errorf("completed = %d after reopen, want 1", summary.Completed)
	}
	if summary.Total != len(habits) {
		t.Errorf("total = %d after reopen, want %d", summary.Total, len(habits))
	}
}

func TestInitCmd_ForceResets(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	// Mutate state so a reset is observable.
	if err := ctx.Store.SaveHabits(nil); err != nil {
		t.Fatal(err)
	}

	forced := &InitCmd{Force: true}
	if err := forced.Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	habits, err := ctx.Store.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 5 {
		t.Errorf("forced init should reseed defaults, got %d habits", len(habits))
	}
}
