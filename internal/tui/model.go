package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/KantaKan/terminal-calorie-tracker/internal/catalog"
	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/ledger"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/stats"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
	"github.com/KantaKan/terminal-calorie-tracker/internal/tui/components/foodlist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateFoods
	StateHistory
	StateLogMeal
	StateLearnFood
	StateEditFood
	StateEditEntry
	StateGoal
	StateConfirmDeleteFood
	StateConfirmDeleteEntry
)

// tabCount is the number of top-level tabs cycled by tab/shift+tab.
const tabCount = 3

type Model struct {
	store   storage.Provider
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	stats   *stats.Stats

	state SessionState
	keys  KeyMap
	help  help.Model

	foodList foodlist.Model
	form     *huh.Form
	foodForm *FoodFormModel
	logForm  *LogFormModel
	goalForm *GoalFormModel

	editingFoodID   string
	editingEntryID  string
	foodToDeleteID  string
	entryToDeleteID string

	// Cursor into today's entries on the dashboard.
	selected int

	today  models.DailyLog
	goal   int
	streak int
	series stats.WeekSeries
	report stats.WeekReport

	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, cat *catalog.Catalog, led *ledger.Ledger, st *stats.Stats) Model {
	m := Model{
		store:    store,
		catalog:  cat,
		ledger:   led,
		stats:    st,
		state:    StateDashboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		foodList: foodlist.New(cat.All(), 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads everything the read-only views render. Called after
// every mutation so totals, streak and series never go stale.
func (m *Model) refresh() {
	today, err := m.ledger.GetDay(m.ledger.Today())
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrDayNotFound) {
			m.statusMsg = apperrors.Format(err)
		}
		today = models.DailyLog{Date: m.ledger.Today()}
	}
	m.today = today
	if m.selected >= len(m.today.Entries) {
		m.selected = len(m.today.Entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}

	if settings, err := m.store.GetSettings(); err == nil {
		m.goal = settings.DailyGoalKcal
	}

	if streak, err := m.stats.Streak(m.goal); err == nil {
		m.streak = streak
	}

	now := m.stats.Now()
	if series, err := m.stats.WeeklySeries(now); err == nil {
		m.series = series
	}
	if report, err := m.stats.WeeklyReport(now); err == nil {
		m.report = report
	}

	m.foodList.SetFoods(m.catalog.All())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDashboard:
		keys = append(keys, m.keys.Log, m.keys.Edit, m.keys.Delete, m.keys.Goal)
	case StateFoods:
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateDashboard:
		actions = []key.Binding{m.keys.Log, m.keys.Edit, m.keys.Delete, m.keys.Goal}
	case StateFoods:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
