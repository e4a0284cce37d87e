package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/KantaKan/terminal-calorie-tracker/internal/catalog"
	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	"github.com/KantaKan/terminal-calorie-tracker/internal/ledger"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/stats"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
	Stats   *stats.Stats
}

// load opens the store, applies the configured timezone and warms the food
// catalog cache. Every command except init goes through here.
func (ctx *Context) load() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if settings, err := ctx.Store.GetSettings(); err == nil && settings.Timezone != "" && settings.Timezone != "Local" {
		if loc, err := time.LoadLocation(settings.Timezone); err == nil {
			ctx.Ledger.SetLocation(loc)
			ctx.Stats.SetLocation(loc)
		}
	}

	return ctx.Catalog.Load()
}

func parseDate(s string) (string, error) {
	if s == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t.Format(constants.DateFormat), nil
}

// resolveFood finds a catalog item by name, falling back to fuzzy search
// so that `caltrack log chkn` still finds "Chicken Breast".
func resolveFood(ctx *Context, name string) (models.FoodItem, error) {
	if food, ok := ctx.Catalog.FindByName(name); ok {
		return food, nil
	}

	matches := ctx.Catalog.Search(name)
	switch len(matches) {
	case 0:
		return models.FoodItem{}, fmt.Errorf("no food matching %q, add it with 'caltrack food add'", name)
	case 1:
		return matches[0], nil
	default:
		var names []string
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return models.FoodItem{}, fmt.Errorf("ambiguous food %q, matches: %s", name, strings.Join(names, ", "))
	}
}

func printDay(day models.DailyLog, goal int) {
	fmt.Printf("Log for %s:\n\n", day.Date)

	if len(day.Entries) == 0 {
		fmt.Println("  No meals logged")
		return
	}

	for _, entry := range day.Entries {
		fmt.Printf("  %s  [%-9s] %-25s %5d kcal  P:%dg C:%dg F:%dg\n",
			entry.Time, entry.TimeSlot, entry.Name,
			entry.Kcal, entry.Protein, entry.Carbs, entry.Fat)
		fmt.Printf("         ID: %s\n", entry.ID)
	}

	fmt.Printf("\n  Total: %d kcal  P:%dg C:%dg F:%dg\n",
		day.TotalKcal, day.TotalProtein, day.TotalCarbs, day.TotalFat)

	if goal > 0 {
		remaining := goal - day.TotalKcal
		if remaining >= 0 {
			fmt.Printf("  Goal:  %d kcal (%d remaining)\n", goal, remaining)
		} else {
			fmt.Printf("  Goal:  %d kcal (%d over)\n", goal, -remaining)
		}
	}
}

func printFood(food models.FoodItem) {
	fmt.Printf("  %-25s %5d kcal  P:%dg C:%dg F:%dg  (%s)\n",
		food.Name, food.Kcal, food.Protein, food.Carbs, food.Fat, food.Category)
}
