package models

import (
	"testing"
	"time"

	"github.com/kbpkavisika/GearUp/internal/constants"
)

func TestNewMoodEntry(t *testing.T) {
	entry := NewMoodEntry("😊", "Happy", "good day")

	if entry.ID == "" {
		t.Error("Expected mood entry to have a generated ID")
	}
	if entry.Date != CurrentDate() {
		t.Errorf("Expected date %q, got %q", CurrentDate(), entry.Date)
	}
	if _, err := time.ParseInLocation(constants.TimestampFormat, entry.Timestamp, time.Local); err != nil {
		t.Errorf("Expected parseable timestamp, got %q: %v", entry.Timestamp, err)
	}
}

func TestMoodTaxonomy(t *testing.T) {
	moods := AllMoods()
	if len(moods) != 7 {
		t.Fatalf("Expected 7 moods in taxonomy, got %d", len(moods))
	}

	wantNames := []string{"Very Happy", "Happy", "Excited", "Neutral", "Tired", "Sad", "Angry"}
	for i, want := range wantNames {
		if moods[i].DisplayName != want {
			t.Errorf("Expected mood %d to be %q, got %q", i, want, moods[i].DisplayName)
		}
	}
}

func TestMoodFromEmoji(t *testing.T) {
	mood, ok := MoodFromEmoji("😴")
	if !ok {
		t.Fatal("Expected to find mood for 😴")
	}
	if mood.DisplayName != "Tired" {
		t.Errorf("Expected Tired, got %q", mood.DisplayName)
	}

	if _, ok := MoodFromEmoji("🍕"); ok {
		t.Error("Expected no mood for emoji outside the taxonomy")
	}
}

func TestDisplayTime(t *testing.T) {
	got := DisplayTime("2024-03-15 09:05:00")
	if got != "09:05" {
		t.Errorf("Expected 09:05, got %q", got)
	}

	if got := DisplayTime("not-a-timestamp"); got != UnknownTimeDisplay {
		t.Errorf("Expected %q for malformed timestamp, got %q", UnknownTimeDisplay, got)
	}
}

func TestDisplayDate(t *testing.T) {
	today := time.Now().Format(constants.TimestampFormat)
	if got := DisplayDate(today); got != "Today" {
		t.Errorf("Expected Today, got %q", got)
	}

	// Late last night is still "Yesterday" regardless of how few hours ago
	// it was; the comparison is calendar-based.
	yesterday := time.Now().AddDate(0, 0, -1).Format(constants.TimestampFormat)
	if got := DisplayDate(yesterday); got != "Yesterday" {
		t.Errorf("Expected Yesterday, got %q", got)
	}

	older := time.Date(2023, time.March, 5, 14, 30, 0, 0, time.Local).Format(constants.TimestampFormat)
	if got := DisplayDate(older); got != "Mar 05" {
		t.Errorf("Expected Mar 05, got %q", got)
	}

	if got := DisplayDate("garbage"); got != UnknownTimeDisplay {
		t.Errorf("Expected %q for malformed timestamp, got %q", UnknownTimeDisplay, got)
	}
}
