// Package ledger owns the per-day nutrition log. It is the sole writer of
// DailyLog totals: every mutation goes through a single atomic store
// operation that adjusts the entry list and the four totals together, so the
// totals can never drift from the entries.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/nutrition"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type Ledger struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
	}
}

// SetLocation pins the clock to a timezone so that "today" follows the
// configured home timezone rather than wherever the process runs.
func (l *Ledger) SetLocation(loc *time.Location) {
	base := l.now
	l.now = func() time.Time { return base().In(loc) }
}

// Today returns the current local calendar date.
func (l *Ledger) Today() string {
	return l.now().Format(constants.DateFormat)
}

// LogMeal snapshots the food into a new entry on today's log. The entry gets
// the current clock time; slot may be given explicitly or left empty to
// bucket from the clock. The day record is created on first use.
func (l *Ledger) LogMeal(food models.FoodItem, slot models.TimeSlot) (models.LogEntry, error) {
	now := l.now()
	if slot == "" {
		slot = models.SlotForTime(now)
	}

	entry := models.LogEntry{
		ID:       uuid.New().String(),
		Name:     food.Name,
		Kcal:     food.Kcal,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fat:      food.Fat,
		Time:     now.Format(constants.TimeFormat),
		TimeSlot: slot,
	}

	date := now.Format(constants.DateFormat)
	if err := l.store.AppendEntry(date, entry); err != nil {
		return models.LogEntry{}, err
	}

	return entry, nil
}

// EditEntry rewrites an entry's name and calories, re-estimating its macros
// from the new values. The store applies the field rewrite and the totals
// delta as one atomic unit; the entry keeps its original time and slot.
// Returns ErrEntryNotFound if the entry is gone (stale selection, wrong day).
func (l *Ledger) EditEntry(date, entryID, newName string, newKcal int, newCategory models.Category) error {
	if err := validation.FoodName(newName); err != nil {
		return err
	}
	if err := validation.Calories(newKcal); err != nil {
		return err
	}

	macros := nutrition.Estimate(newKcal, newCategory)
	updated := models.LogEntry{
		ID:      entryID,
		Name:    newName,
		Kcal:    newKcal,
		Protein: macros.Protein,
		Carbs:   macros.Carbs,
		Fat:     macros.Fat,
	}

	return l.store.UpdateEntry(date, updated)
}

// DeleteEntry removes an entry, decrementing the day's totals by the entry's
// stored snapshot values in the same atomic unit.
func (l *Ledger) DeleteEntry(date, entryID string) error {
	return l.store.RemoveEntry(date, entryID)
}

// GetDay returns the log for a date, or ErrDayNotFound.
func (l *Ledger) GetDay(date string) (models.DailyLog, error) {
	return l.store.GetDay(date)
}

// ListDays returns all logged days, most recent first.
func (l *Ledger) ListDays() ([]models.DailyLog, error) {
	return l.store.ListDays()
}
