package cli

import (
	"fmt"

	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type EntryEditCmd struct {
	Date     string `arg:"" help:"Date of the entry (YYYY-MM-DD or 'today')."`
	ID       string `arg:"" help:"Entry ID (shown by 'caltrack day')."`
	Name     string `short:"n" help:"New name. Keeps the current name if omitted."`
	Kcal     int    `short:"k" help:"New calorie amount." required:""`
	Category string `short:"c" help:"Category used to re-estimate macros (protein-heavy|carb-heavy|fat-heavy|mixed)." default:"mixed"`
}

func (c *EntryEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	category, err := validation.Category(c.Category)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		entry, err := findEntry(ctx, date, c.ID)
		if err != nil {
			return err
		}
		name = entry.Name
	}

	if err := ctx.Ledger.EditEntry(date, c.ID, name, c.Kcal, category); err != nil {
		return err
	}

	fmt.Printf("Updated entry %s on %s\n", c.ID, date)
	return nil
}

type EntryDeleteCmd struct {
	Date string `arg:"" help:"Date of the entry (YYYY-MM-DD or 'today')."`
	ID   string `arg:"" help:"Entry ID (shown by 'caltrack day')."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Ledger.DeleteEntry(date, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted entry %s from %s\n", c.ID, date)
	return nil
}

func findEntry(ctx *Context, date, entryID string) (models.LogEntry, error) {
	day, err := ctx.Ledger.GetDay(date)
	if err != nil {
		return models.LogEntry{}, err
	}
	for _, entry := range day.Entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return models.LogEntry{}, fmt.Errorf("no entry %s on %s", entryID, date)
}
