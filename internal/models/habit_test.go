package models

import (
	"regexp"
	"testing"
)

func TestNewHabit(t *testing.T) {
	habit := NewHabit("Drink Water", "Stay hydrated", 8, "glasses", "💧")

	if habit.ID == "" {
		t.Error("Expected habit to have a generated ID")
	}
	if !habit.IsActive {
		t.Error("Expected new habit to be active")
	}
	if habit.TargetValue != 8 {
		t.Errorf("Expected target value 8, got %d", habit.TargetValue)
	}
	if matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, habit.CreatedDate); !matched {
		t.Errorf("Expected created date in YYYY-MM-DD form, got %q", habit.CreatedDate)
	}
}

func TestTodayKeyFormat(t *testing.T) {
	key := TodayKey()
	if matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, key); !matched {
		t.Errorf("Expected zero-padded YYYY-MM-DD key, got %q", key)
	}
	if key != CurrentDate() {
		t.Errorf("Expected TodayKey to equal CurrentDate, got %q vs %q", key, CurrentDate())
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		want    int
	}{
		{"zero progress", 0, 8, 0},
		{"partial progress floors", 3, 8, 37},
		{"complete", 8, 8, 100},
		{"over target clamps to 100", 12, 8, 100},
		{"zero target", 5, 0, 0},
		{"negative target", 5, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercentage(tt.current, tt.target)
			if got != tt.want {
				t.Errorf("ProgressPercentage(%d, %d) = %d, want %d", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestProgressPercentageMonotonic(t *testing.T) {
	target := 7
	prev := 0
	for current := 0; current <= target+3; current++ {
		pct := ProgressPercentage(current, target)
		if pct < prev {
			t.Fatalf("Percentage decreased from %d to %d at current=%d", prev, pct, current)
		}
		if pct < 0 || pct > 100 {
			t.Fatalf("Percentage %d out of range at current=%d", pct, current)
		}
		prev = pct
	}
}

func TestIncrement(t *testing.T) {
	habit := NewHabit("Exercise", "Daily physical activity", 3, "minutes", "🏃")

	progress := HabitProgress{HabitID: habit.ID, Date: TodayKey()}

	progress = Increment(habit, progress)
	if progress.CurrentValue != 1 {
		t.Errorf("Expected current value 1, got %d", progress.CurrentValue)
	}
	if progress.IsCompleted {
		t.Error("Expected habit not completed after one increment")
	}
	if progress.CompletedAt != "" {
		t.Errorf("Expected empty CompletedAt while incomplete, got %q", progress.CompletedAt)
	}

	progress = Increment(habit, progress)
	progress = Increment(habit, progress)
	if progress.CurrentValue != 3 {
		t.Errorf("Expected current value 3, got %d", progress.CurrentValue)
	}
	if !progress.IsCompleted {
		t.Error("Expected habit completed at target")
	}
	if progress.CompletedAt == "" {
		t.Error("Expected CompletedAt stamped on completion")
	}

	// Incrementing past the target keeps the value clamped and preserves
	// the original completion timestamp.
	stamped := progress.CompletedAt
	progress = Increment(habit, progress)
	if progress.CurrentValue != 3 {
		t.Errorf("Expected value clamped to 3, got %d", progress.CurrentValue)
	}
	if progress.CompletedAt != stamped {
		t.Errorf("Expected CompletedAt preserved, got %q vs %q", progress.CompletedAt, stamped)
	}
}

func TestIncrementNTimesProperty(t *testing.T) {
	for _, target := range []int{1, 2, 5, 8} {
		habit := NewHabit("Reading", "", target, "minutes", "📚")
		progress := HabitProgress{HabitID: habit.ID, Date: TodayKey()}

		for n := 1; n <= target+2; n++ {
			progress = Increment(habit, progress)

			want := n
			if want > target {
				want = target
			}
			if progress.CurrentValue != want {
				t.Fatalf("target=%d: after %d increments got value %d, want %d", target, n, progress.CurrentValue, want)
			}
			if progress.IsCompleted != (want >= target) {
				t.Fatalf("target=%d: after %d increments completed=%v, want %v", target, n, progress.IsCompleted, want >= target)
			}
		}
	}
}

func TestIncrementFillsNaturalKey(t *testing.T) {
	habit := NewHabit("Sleep", "", 8, "hours", "😴")

	progress := Increment(habit, HabitProgress{})
	if progress.HabitID != habit.ID {
		t.Errorf("Expected habit id %q, got %q", habit.ID, progress.HabitID)
	}
	if progress.Date != TodayKey() {
		t.Errorf("Expected date %q, got %q", TodayKey(), progress.Date)
	}
}
