package progress

import (
	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

// Summary is the daily completion rollup shown by the dashboard, the
// status command, and the widget. All three surfaces derive from this one
// computation so they can never disagree.
type Summary struct {
	Completed  int
	Total      int
	Percentage int
}

// DailySummary counts active habits completed for the day. Percentage is
// floor(completed*100/total); zero habits yields 0/0/0%.
func DailySummary(habits []models.Habit, progressByHabitID map[string]models.HabitProgress) Summary {
	var s Summary
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		s.Total++
		if p, ok := progressByHabitID[h.ID]; ok && p.IsCompleted {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percentage = s.Completed * 100 / s.Total
	}
	return s
}

// SummaryForDate loads the given day's progress from the store and rolls
// it up.
func SummaryForDate(store storage.Provider, date string) (Summary, error) {
	habits, err := store.GetHabits()
	if err != nil {
		return Summary{}, err
	}

	all, err := store.GetHabitProgress()
	if err != nil {
		return Summary{}, err
	}

	byHabit := make(map[string]models.HabitProgress)
	for _, p := range all {
		if p.Date == date {
			byHabit[p.HabitID] = p
		}
	}

	return DailySummary(habits, byHabit), nil
}

// TodaySummary rolls up today's completion.
func TodaySummary(store storage.Provider) (Summary, error) {
	return SummaryForDate(store, models.TodayKey())
}

// MotivationalTier maps a completion percentage to its encouragement line.
func MotivationalTier(percentage int) string {
	switch {
	case percentage >= 100:
		return "🎉 Perfect day! All habits completed!"
	case percentage >= 80:
		return "🌟 Excellent progress! Keep it up!"
	case percentage >= 60:
		return "💪 Good work! You're on track!"
	case percentage >= 40:
		return "📈 Making progress! Don't give up!"
	case percentage >= 20:
		return "🚀 Getting started! Every step counts!"
	default:
		return "🌱 New day, new opportunities!"
	}
}
