package validation

import (
	"strings"
	"time"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	"github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

// FoodName checks that a food name is non-empty after trimming.
func FoodName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Validationf("food name cannot be empty")
	}
	return nil
}

// Calories checks that a calorie value is not negative.
func Calories(kcal int) error {
	if kcal < 0 {
		return errors.Validationf("calories cannot be negative")
	}
	return nil
}

// DailyGoal checks that a daily calorie goal is positive.
func DailyGoal(goal int) error {
	if goal <= 0 {
		return errors.Validationf("daily goal must be a positive number of calories")
	}
	return nil
}

// Date checks that a date string matches YYYY-MM-DD.
func Date(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return errors.Validationf("invalid date %q, use YYYY-MM-DD", s)
	}
	return nil
}

// TimeOfDay checks that a time string matches HH:mm.
func TimeOfDay(s string) error {
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return errors.Validationf("invalid time %q, use HH:mm", s)
	}
	return nil
}

// Category parses a category string, accepting any case.
func Category(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.Categories {
		if c == known {
			return known, nil
		}
	}
	return "", errors.Validationf("invalid category %q (protein-heavy|carb-heavy|fat-heavy|mixed)", s)
}

// Slot parses a time slot string, accepting any case. An empty string is
// allowed and means "bucket from the clock".
func Slot(s string) (models.TimeSlot, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	for _, known := range models.TimeSlots {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", errors.Validationf("invalid time slot %q (Morning|Afternoon|Evening|Night)", s)
}
