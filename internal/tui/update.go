package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/tui/components/foodlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.foodList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case foodlist.LogFoodMsg:
		if _, err := m.ledger.LogMeal(msg.Food, ""); err != nil {
			m.statusMsg = apperrors.Format(err)
		} else {
			m.statusMsg = "Logged " + msg.Food.Name
			m.refresh()
		}
		return m, nil

	case foodlist.LearnFoodMsg:
		m.foodForm = &FoodFormModel{Category: models.CategoryMixed}
		m.form = NewFoodForm(m.foodForm)
		m.editingFoodID = ""
		m.state = StateLearnFood
		return m, m.form.Init()

	case foodlist.EditFoodMsg:
		m.foodForm = &FoodFormModel{
			Name:     msg.Food.Name,
			Kcal:     strconv.Itoa(msg.Food.Kcal),
			Category: msg.Food.Category,
		}
		m.form = NewFoodForm(m.foodForm)
		m.editingFoodID = msg.Food.ID
		m.state = StateEditFood
		return m, m.form.Init()

	case foodlist.DeleteFoodMsg:
		m.foodToDeleteID = msg.ID
		m.state = StateConfirmDeleteFood
		return m, nil
	}

	switch m.state {
	case StateLogMeal, StateLearnFood, StateEditFood, StateEditEntry, StateGoal:
		return m.updateForm(msg)
	case StateConfirmDeleteFood:
		return m.updateConfirmDeleteFood(msg)
	case StateConfirmDeleteEntry:
		return m.updateConfirmDeleteEntry(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Don't steal 'q' while the food list filter input is open.
			if m.state == StateFoods && msg.String() == "q" {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		}
	}

	switch m.state {
	case StateDashboard:
		return m.updateDashboard(msg)
	case StateFoods:
		var cmd tea.Cmd
		m.foodList, cmd = m.foodList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.today.Entries)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, m.keys.Log):
		if m.catalog.Len() == 0 {
			m.statusMsg = "No foods in the catalog yet. Add one on the Foods tab."
			return m, nil
		}
		m.logForm = &LogFormModel{}
		m.form = NewLogForm(m.logForm, m.catalog.All())
		m.state = StateLogMeal
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Edit):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		m.foodForm = &FoodFormModel{
			Name:     entry.Name,
			Kcal:     strconv.Itoa(entry.Kcal),
			Category: models.CategoryMixed,
		}
		m.form = NewFoodForm(m.foodForm)
		m.editingEntryID = entry.ID
		m.state = StateEditEntry
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Delete):
		entry, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		m.entryToDeleteID = entry.ID
		m.state = StateConfirmDeleteEntry
	case key.Matches(keyMsg, m.keys.Goal):
		m.goalForm = &GoalFormModel{Kcal: strconv.Itoa(m.goal)}
		m.form = NewGoalForm(m.goalForm)
		m.state = StateGoal
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) selectedEntry() (models.LogEntry, bool) {
	if len(m.today.Entries) == 0 || m.selected >= len(m.today.Entries) {
		return models.LogEntry{}, false
	}
	return m.today.Entries[m.selected], true
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.state = m.tabForFormState()
		m.refresh()
	case huh.StateAborted:
		m.state = m.tabForFormState()
	}

	return m, cmd
}

// tabForFormState maps a form state back to the tab it was opened from.
func (m Model) tabForFormState() SessionState {
	switch m.state {
	case StateLearnFood, StateEditFood:
		return StateFoods
	default:
		return StateDashboard
	}
}

func (m *Model) applyForm() {
	var err error

	switch m.state {
	case StateLogMeal:
		food, ok := m.catalog.Get(m.logForm.FoodID)
		if !ok {
			m.statusMsg = "Error: selected food no longer exists"
			return
		}
		_, err = m.ledger.LogMeal(food, m.logForm.Slot)
		if err == nil {
			m.statusMsg = "Logged " + food.Name
		}

	case StateLearnFood:
		kcal, _ := strconv.Atoi(strings.TrimSpace(m.foodForm.Kcal))
		_, err = m.catalog.Learn(m.foodForm.Name, kcal, m.foodForm.Category)

	case StateEditFood:
		kcal, _ := strconv.Atoi(strings.TrimSpace(m.foodForm.Kcal))
		_, err = m.catalog.Update(m.editingFoodID, m.foodForm.Name, kcal, m.foodForm.Category)

	case StateEditEntry:
		kcal, _ := strconv.Atoi(strings.TrimSpace(m.foodForm.Kcal))
		err = m.ledger.EditEntry(m.today.Date, m.editingEntryID, m.foodForm.Name, kcal, m.foodForm.Category)

	case StateGoal:
		kcal, _ := strconv.Atoi(strings.TrimSpace(m.goalForm.Kcal))
		var settings models.Settings
		settings, err = m.store.GetSettings()
		if err == nil {
			settings.DailyGoalKcal = kcal
			err = m.store.SaveSettings(settings)
		}
	}

	if err != nil {
		m.statusMsg = apperrors.Format(err)
	}
}

func (m Model) updateConfirmDeleteFood(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.catalog.Remove(m.foodToDeleteID); err != nil {
			m.statusMsg = apperrors.Format(err)
		}
		m.foodToDeleteID = ""
		m.refresh()
		m.state = StateFoods
	case "n", "N", "esc", "q":
		m.foodToDeleteID = ""
		m.state = StateFoods
	}

	return m, nil
}

func (m Model) updateConfirmDeleteEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.ledger.DeleteEntry(m.today.Date, m.entryToDeleteID); err != nil {
			m.statusMsg = apperrors.Format(err)
		}
		m.entryToDeleteID = ""
		m.refresh()
		m.state = StateDashboard
	case "n", "N", "esc", "q":
		m.entryToDeleteID = ""
		m.state = StateDashboard
	}

	return m, nil
}
