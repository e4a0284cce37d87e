package cli

import (
	"fmt"
	"time"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
)

type WeekCmd struct {
	Date string `arg:"" help:"Any date within the week to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	ref, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
	if err != nil {
		return err
	}

	series, err := ctx.Stats.WeeklySeries(ref)
	if err != nil {
		return err
	}

	fmt.Printf("Week of %s:\n\n", series.Days[0].Date)
	for _, day := range series.Days {
		d, _ := time.ParseInLocation(constants.DateFormat, day.Date, time.Local)
		if day.Logged {
			fmt.Printf("  %s %s  %5d kcal\n", d.Weekday().String()[:3], day.Date, day.Kcal)
		} else {
			fmt.Printf("  %s %s      -\n", d.Weekday().String()[:3], day.Date)
		}
	}
	fmt.Printf("\n  Total: %d kcal\n", series.TotalKcal)
	return nil
}
