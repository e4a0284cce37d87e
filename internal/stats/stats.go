// Package stats derives read-only views over the ledger history: the
// Monday-aligned week series, the trailing 7-day report, and the
// goal-adherence streak. It never mutates the store.
package stats

import (
	"errors"
	"math"
	"time"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

// DayKcal is one day of a week series. Logged distinguishes a day with a
// zero-total log from a day with no log at all.
type DayKcal struct {
	Date   string
	Kcal   int
	Logged bool
}

// WeekSeries covers Monday through Sunday of one calendar week.
type WeekSeries struct {
	Days      [7]DayKcal
	TotalKcal int
}

// WeekReport covers the trailing 7-day window ending at the reference date.
// This is a different window than WeekSeries: a trailing window is only
// Monday-aligned when the reference date is a Sunday.
type WeekReport struct {
	StartDate  string
	EndDate    string
	TotalKcal  int
	AvgKcal    int
	DaysLogged int
}

type Stats struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Stats {
	return &Stats{
		store: store,
		now:   time.Now,
	}
}

// SetLocation pins the streak clock to a timezone, matching the ledger's
// notion of "today".
func (s *Stats) SetLocation(loc *time.Location) {
	base := s.now
	s.now = func() time.Time { return base().In(loc) }
}

// Now exposes the pinned clock so callers derive reference dates from the
// same timezone the streak uses.
func (s *Stats) Now() time.Time {
	return s.now()
}

// dayKcal reads one day's total; an absent day reads as an unlogged zero.
func (s *Stats) dayKcal(date string) (DayKcal, error) {
	day, err := s.store.GetDay(date)
	if errors.Is(err, apperrors.ErrDayNotFound) {
		return DayKcal{Date: date}, nil
	}
	if err != nil {
		return DayKcal{}, err
	}
	return DayKcal{Date: date, Kcal: day.TotalKcal, Logged: true}, nil
}

// WeeklySeries returns the seven calendar days (Monday through Sunday) of
// the week containing ref, with each day's total kcal and the week sum.
func (s *Stats) WeeklySeries(ref time.Time) (WeekSeries, error) {
	// time.Weekday counts Sunday as 0; shift so Monday is the week start
	offset := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -offset)

	var series WeekSeries
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(constants.DateFormat)
		day, err := s.dayKcal(date)
		if err != nil {
			return WeekSeries{}, err
		}
		series.Days[i] = day
		series.TotalKcal += day.Kcal
	}

	return series, nil
}

// WeeklyReport returns totals for the trailing window of the six days before
// ref plus ref itself. The average is taken over all seven calendar days,
// counting unlogged days as zero.
func (s *Stats) WeeklyReport(ref time.Time) (WeekReport, error) {
	start := ref.AddDate(0, 0, -6)
	report := WeekReport{
		StartDate: start.Format(constants.DateFormat),
		EndDate:   ref.Format(constants.DateFormat),
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(constants.DateFormat)
		day, err := s.dayKcal(date)
		if err != nil {
			return WeekReport{}, err
		}
		report.TotalKcal += day.Kcal
		if day.Logged {
			report.DaysLogged++
		}
	}

	report.AvgKcal = int(math.Round(float64(report.TotalKcal) / 7))
	return report, nil
}

// Streak counts consecutive prior days, walking backward from yesterday,
// where calories were logged and within the goal (0 < total <= goal). The
// first day that breaks the condition stops the scan and is not counted.
// Today is then checked independently: an incomplete today doesn't break an
// otherwise valid streak, it just isn't counted until it qualifies.
func (s *Stats) Streak(goal int) (int, error) {
	if err := validation.DailyGoal(goal); err != nil {
		return 0, err
	}

	today := s.now()
	streak := 0
	for i := 1; i <= constants.StreakScanLimitDays; i++ {
		date := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		day, err := s.dayKcal(date)
		if err != nil {
			return 0, err
		}
		if !day.Logged || day.Kcal <= 0 || day.Kcal > goal {
			break
		}
		streak++
	}

	day, err := s.dayKcal(today.Format(constants.DateFormat))
	if err != nil {
		return 0, err
	}
	if day.Logged && day.Kcal > 0 && day.Kcal <= goal {
		streak++
	}

	return streak, nil
}
