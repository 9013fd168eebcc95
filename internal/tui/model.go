package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kbpkavisika/GearUp/internal/cli"
	"github.com/kbpkavisika/GearUp/internal/models"
	"github.com/kbpkavisika/GearUp/internal/reminder"
	"github.com/kbpkavisika/GearUp/internal/storage"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateMoods
	StateLogMood
)

type MoodFormModel struct {
	Emoji string
	Note  string
}

type Model struct {
	store     storage.Provider
	scheduler *reminder.Scheduler
	state     SessionState
	keys      KeyMap
	help      help.Model

	habits   []models.Habit
	progress map[string]models.HabitProgress
	moods    []models.MoodEntry
	cursor   int

	form      *huh.Form
	moodForm  *MoodFormModel
	formError string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, sched *reminder.Scheduler) Model {
	m := Model{
		store:     store,
		scheduler: sched,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.refresh()
	return m
}

// refresh reloads every collection the dashboard shows. Load errors leave
// the previous data in place and surface in the status line.
func (m *Model) refresh() {
	m.formError = ""

	if habits, err := m.store.GetHabits(); err == nil {
		m.habits = habits
	} else {
		m.formError = err.Error()
	}

	if byHabit, err := cli.TodaysProgressByHabit(m.store); err == nil {
		m.progress = byHabit
	} else {
		m.formError = err.Error()
	}

	if moods, err := m.store.GetMoodEntries(); err == nil {
		m.moods = moods
	} else {
		m.formError = err.Error()
	}

	if m.cursor >= len(m.habits) {
		m.cursor = 0
	}
}

func (m *Model) newMoodForm() {
	m.moodForm = &MoodFormModel{}
	if entry, err := m.store.GetTodaysMoodEntry(); err == nil {
		m.moodForm.Emoji = entry.Emoji
		m.moodForm.Note = entry.Note
	}

	var options []huh.Option[string]
	for _, mood := range models.AllMoods() {
		options = append(options, huh.NewOption(mood.Emoji+" "+mood.DisplayName, mood.Emoji))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&m.moodForm.Emoji),
			huh.NewInput().
				Title("Note (optional)").
				Value(&m.moodForm.Note),
		),
	)
}

func (m Model) Init() tea.Cmd {
	return nil
}
