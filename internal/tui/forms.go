package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

type FoodFormModel struct {
	Name     string
	Kcal     string
	Category models.Category
}

type LogFormModel struct {
	FoodID string
	Slot   models.TimeSlot
}

type GoalFormModel struct {
	Kcal string
}

func validatePositiveInt(label string) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if i <= 0 {
			return fmt.Errorf("%s must be positive", label)
		}
		return nil
	}
}

func categoryOptions() []huh.Option[models.Category] {
	return []huh.Option[models.Category]{
		huh.NewOption("Mixed", models.CategoryMixed),
		huh.NewOption("Protein-heavy", models.CategoryProteinHeavy),
		huh.NewOption("Carb-heavy", models.CategoryCarbHeavy),
		huh.NewOption("Fat-heavy", models.CategoryFatHeavy),
	}
}

// NewFoodForm builds the add/edit food form. The same form serves both,
// prefilled from the selected item when editing.
func NewFoodForm(fm *FoodFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("food name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Calories").
				Value(&fm.Kcal).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("calories must be a number")
					}
					if i < 0 {
						return fmt.Errorf("calories cannot be negative")
					}
					return nil
				}),
			huh.NewSelect[models.Category]().
				Title("Category").
				Description("Used to estimate the macro split").
				Options(categoryOptions()...).
				Value(&fm.Category),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewLogForm builds the log-meal form shown from the dashboard.
func NewLogForm(fm *LogFormModel, foods []models.FoodItem) *huh.Form {
	options := make([]huh.Option[string], len(foods))
	for i, f := range foods {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%d kcal)", f.Name, f.Kcal), f.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Food").
				Options(options...).
				Value(&fm.FoodID),
			huh.NewSelect[models.TimeSlot]().
				Title("Time slot").
				Options(
					huh.NewOption("Now (automatic)", models.TimeSlot("")),
					huh.NewOption("Morning", models.SlotMorning),
					huh.NewOption("Afternoon", models.SlotAfternoon),
					huh.NewOption("Evening", models.SlotEvening),
					huh.NewOption("Night", models.SlotNight),
				).
				Value(&fm.Slot),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily calorie goal").
				Value(&fm.Kcal).
				Validate(validatePositiveInt("goal")),
		),
	).WithTheme(huh.ThemeDracula())
}
