package cli

import (
	"fmt"

	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type LogCmd struct {
	Food string `arg:"" help:"Name of the food to log (fuzzy matched against the catalog)."`
	Slot string `short:"s" help:"Time slot (morning|afternoon|evening|night). Defaults to the current time of day."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	slot, err := validation.Slot(c.Slot)
	if err != nil {
		return err
	}

	food, err := resolveFood(ctx, c.Food)
	if err != nil {
		return err
	}

	entry, err := ctx.Ledger.LogMeal(food, slot)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s (%d kcal) at %s [%s]\n", entry.Name, entry.Kcal, entry.Time, entry.TimeSlot)

	day, err := ctx.Ledger.GetDay(ctx.Ledger.Today())
	if err != nil {
		return err
	}
	fmt.Printf("Today so far: %d kcal  P:%dg C:%dg F:%dg\n",
		day.TotalKcal, day.TotalProtein, day.TotalCarbs, day.TotalFat)
	return nil
}
