package cli

import (
	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	day, err := ctx.Ledger.GetDay(date)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDayNotFound) {
			day = models.DailyLog{Date: date}
		} else {
			return err
		}
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	printDay(day, settings.DailyGoalKcal)
	return nil
}
