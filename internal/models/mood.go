package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbpkavisika/GearUp/internal/constants"
)

// UnknownTimeDisplay is shown when a stored timestamp cannot be parsed.
// Callers render the sentinel rather than failing the whole listing.
const UnknownTimeDisplay = "Unknown"

// MoodEntry is one dated mood/journal log.
type MoodEntry struct {
	ID        string `json:"id"`
	Emoji     string `json:"emoji"`
	MoodName  string `json:"mood_name"`
	Note      string `json:"note"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS format
	Date      string `json:"date"`      // YYYY-MM-DD format
}

// NewMoodEntry creates an entry stamped with the current time and date key.
func NewMoodEntry(emoji, moodName, note string) MoodEntry {
	return MoodEntry{
		ID:        uuid.New().String(),
		Emoji:     emoji,
		MoodName:  moodName,
		Note:      note,
		Timestamp: CurrentTimestamp(),
		Date:      CurrentDate(),
	}
}

// MoodType is one entry of the fixed mood taxonomy.
type MoodType struct {
	Emoji       string
	DisplayName string
}

var moodTypes = []MoodType{
	{Emoji: "😄", DisplayName: "Very Happy"},
	{Emoji: "😊", DisplayName: "Happy"},
	{Emoji: "🤩", DisplayName: "Excited"},
	{Emoji: "😐", DisplayName: "Neutral"},
	{Emoji: "😴", DisplayName: "Tired"},
	{Emoji: "😢", DisplayName: "Sad"},
	{Emoji: "😡", DisplayName: "Angry"},
}

// AllMoods returns the full taxonomy in fixed order.
func AllMoods() []MoodType {
	moods := make([]MoodType, len(moodTypes))
	copy(moods, moodTypes)
	return moods
}

// MoodFromEmoji looks up a mood by exact emoji match. The boolean reports
// whether the emoji belongs to the taxonomy.
func MoodFromEmoji(emoji string) (MoodType, bool) {
	for _, m := range moodTypes {
		if m.Emoji == emoji {
			return m, true
		}
	}
	return MoodType{}, false
}

// DisplayTime formats a stored timestamp as HH:MM for listing.
func DisplayTime(timestamp string) string {
	t, err := time.ParseInLocation(constants.TimestampFormat, timestamp, time.Local)
	if err != nil {
		return UnknownTimeDisplay
	}
	return t.Format(constants.TimeFormat)
}

// DisplayDate renders a stored timestamp as "Today", "Yesterday", or a
// short month+day. Day comparison is calendar-aware (local year and
// day-of-year), not a 24h difference, so midnight rollover and DST shifts
// resolve correctly.
func DisplayDate(timestamp string) string {
	t, err := time.ParseInLocation(constants.TimestampFormat, timestamp, time.Local)
	if err != nil {
		return UnknownTimeDisplay
	}

	now := time.Now()
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("Jan 02")
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
