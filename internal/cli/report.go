package cli

import (
	"fmt"
	"time"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
)

type ReportCmd struct {
	Date string `arg:"" help:"Last day of the trailing window (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	var ref time.Time
	if c.Date == "today" {
		ref = ctx.Stats.Now()
	} else {
		var err error
		ref, err = time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
		}
	}

	report, err := ctx.Stats.WeeklyReport(ref)
	if err != nil {
		return err
	}

	fmt.Printf("Last 7 days (%s to %s):\n", report.StartDate, report.EndDate)
	fmt.Printf("  Days logged:   %d\n", report.DaysLogged)
	fmt.Printf("  Total intake:  %d kcal\n", report.TotalKcal)
	fmt.Printf("  Daily average: %d kcal\n", report.AvgKcal)
	return nil
}
