package cli

import (
	"fmt"

	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type GoalCmd struct {
	Kcal int `arg:"" optional:"" help:"New daily calorie goal. Shows the current goal if omitted."`
}

func (c *GoalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Kcal == 0 {
		fmt.Printf("Daily goal: %d kcal\n", settings.DailyGoalKcal)
		return nil
	}

	if err := validation.DailyGoal(c.Kcal); err != nil {
		return err
	}

	settings.DailyGoalKcal = c.Kcal
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Daily goal set to %d kcal\n", c.Kcal)
	return nil
}
