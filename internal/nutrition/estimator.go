// Package nutrition estimates macronutrient splits for foods where only the
// calorie count is known, using a fixed per-category ratio table.
package nutrition

import (
	"math"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

// MacroSplit is an estimated macronutrient breakdown in grams.
type MacroSplit struct {
	Protein int
	Carbs   int
	Fat     int
}

// macroRatios is the fraction of total calories attributed to each macro.
type macroRatios struct {
	protein float64
	carbs   float64
	fat     float64
}

func ratiosFor(category models.Category) macroRatios {
	switch category {
	case models.CategoryProteinHeavy:
		return macroRatios{protein: 0.40, carbs: 0.20, fat: 0.30}
	case models.CategoryCarbHeavy:
		return macroRatios{protein: 0.15, carbs: 0.70, fat: 0.15}
	case models.CategoryFatHeavy:
		return macroRatios{protein: 0.10, carbs: 0.10, fat: 0.80}
	case models.CategoryMixed:
		return macroRatios{protein: 0.30, carbs: 0.40, fat: 0.30}
	default:
		// Unknown categories fall back to the mixed profile.
		return macroRatios{protein: 0.30, carbs: 0.40, fat: 0.30}
	}
}

// Estimate maps total calories and a food category to estimated grams of
// protein, carbs, and fat. Each gram value is rounded independently, so the
// calories implied by the result can drift a few kcal from the input; that
// drift is accepted, not corrected.
func Estimate(kcal int, category models.Category) MacroSplit {
	r := ratiosFor(category)
	k := float64(kcal)
	return MacroSplit{
		Protein: int(math.Round(k * r.protein / constants.KcalPerGramProtein)),
		Carbs:   int(math.Round(k * r.carbs / constants.KcalPerGramCarbs)),
		Fat:     int(math.Round(k * r.fat / constants.KcalPerGramFat)),
	}
}

// CaloriesFromMacros converts a macro breakdown in grams back to calories.
// This is only an approximate inverse of Estimate because of per-gram
// rounding.
func CaloriesFromMacros(protein, carbs, fat int) int {
	return protein*constants.KcalPerGramProtein +
		carbs*constants.KcalPerGramCarbs +
		fat*constants.KcalPerGramFat
}
