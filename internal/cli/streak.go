package cli

import "fmt"

type StreakCmd struct {
	Goal int `short:"g" help:"Calorie goal to check against. Defaults to the configured daily goal."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	goal := c.Goal
	if goal == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		goal = settings.DailyGoalKcal
	}

	streak, err := ctx.Stats.Streak(goal)
	if err != nil {
		return err
	}

	switch streak {
	case 1:
		fmt.Printf("1 day at or under %d kcal\n", goal)
	default:
		fmt.Printf("%d days at or under %d kcal\n", streak, goal)
	}
	return nil
}
