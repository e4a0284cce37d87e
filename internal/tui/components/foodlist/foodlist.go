package foodlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

type LogFoodMsg struct {
	Food models.FoodItem
}

type LearnFoodMsg struct{}

type EditFoodMsg struct {
	Food models.FoodItem
}

type DeleteFoodMsg struct {
	ID string
}

type Item struct {
	Food models.FoodItem
}

func (i Item) Title() string { return i.Food.Name }
func (i Item) Description() string {
	return fmt.Sprintf("%d kcal | P:%dg C:%dg F:%dg | %s",
		i.Food.Kcal, i.Food.Protein, i.Food.Carbs, i.Food.Fat, i.Food.Category)
}
func (i Item) FilterValue() string { return i.Food.Name }

type KeyMap struct {
	Log    key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Log: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log meal"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add food"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit food"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete food"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(foods []models.FoodItem, width, height int) Model {
	items := make([]list.Item, len(foods))
	for i, f := range foods {
		items[i] = Item{Food: f}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Foods"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Add, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Log, keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetFoods(foods []models.FoodItem) {
	items := make([]list.Item, len(foods))
	for i, f := range foods {
		items[i] = Item{Food: f}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Log):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return LogFoodMsg{Food: i.Food} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return LearnFoodMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditFoodMsg{Food: i.Food} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteFoodMsg{ID: i.Food.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No foods yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
