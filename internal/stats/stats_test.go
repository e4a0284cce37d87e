package stats

import (
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
)

// setupStats builds a stats engine over a store pre-seeded with one entry
// per date/kcal pair, with the clock pinned to now.
func setupStats(t *testing.T, now time.Time, dayKcals map[string]int) *Stats {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	for date, kcal := range dayKcals {
		entry := models.LogEntry{ID: "e-" + date, Name: "Meal", Kcal: kcal,
			Time: "12:00", TimeSlot: models.SlotAfternoon}
		if err := store.AppendEntry(date, entry); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	s := New(store)
	s.now = func() time.Time { return now }
	return s
}

func date(s string) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", s, time.Local)
	return d
}

func TestWeeklySeries_MondayAligned(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week runs 2025-03-10 (Mon) through
	// 2025-03-16 (Sun)
	ref := date("2025-03-12")
	s := setupStats(t, ref, map[string]int{
		"2025-03-09": 1500, // Sunday before: outside the week
		"2025-03-10": 1800,
		"2025-03-12": 2100,
		"2025-03-16": 900,
		"2025-03-17": 2200, // Monday after: outside the week
	})

	series, err := s.WeeklySeries(ref)
	if err != nil {
		t.Fatalf("WeeklySeries failed: %v", err)
	}

	if series.Days[0].Date != "2025-03-10" {
		t.Errorf("series starts at %s, want 2025-03-10 (Monday)", series.Days[0].Date)
	}
	if series.Days[6].Date != "2025-03-16" {
		t.Errorf("series ends at %s, want 2025-03-16 (Sunday)", series.Days[6].Date)
	}
	if series.TotalKcal != 4800 {
		t.Errorf("TotalKcal = %d, want 4800", series.TotalKcal)
	}
	if series.Days[1].Kcal != 0 || series.Days[1].Logged {
		t.Errorf("unlogged Tuesday = %+v, want zero and unlogged", series.Days[1])
	}
	if series.Days[2].Kcal != 2100 {
		t.Errorf("Wednesday = %+v, want 2100", series.Days[2])
	}
}

func TestWeeklySeries_SundayReference(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday
	ref := date("2025-03-16")
	s := setupStats(t, ref, map[string]int{"2025-03-10": 1000})

	series, err := s.WeeklySeries(ref)
	if err != nil {
		t.Fatalf("WeeklySeries failed: %v", err)
	}
	if series.Days[0].Date != "2025-03-10" || series.Days[6].Date != "2025-03-16" {
		t.Errorf("week window = %s..%s, want 2025-03-10..2025-03-16",
			series.Days[0].Date, series.Days[6].Date)
	}
}

func TestWeeklyReport_TrailingWindow(t *testing.T) {
	ref := date("2025-03-12") // Wednesday
	s := setupStats(t, ref, map[string]int{
		"2025-03-05": 999, // day before the window
		"2025-03-06": 1400,
		"2025-03-10": 1800,
		"2025-03-12": 2100,
		"2025-03-13": 800, // after the reference date
	})

	report, err := s.WeeklyReport(ref)
	if err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}

	if report.StartDate != "2025-03-06" || report.EndDate != "2025-03-12" {
		t.Errorf("window = %s..%s, want 2025-03-06..2025-03-12", report.StartDate, report.EndDate)
	}
	if report.TotalKcal != 5300 {
		t.Errorf("TotalKcal = %d, want 5300", report.TotalKcal)
	}
	if report.AvgKcal != 757 { // 5300/7 = 757.14 -> 757
		t.Errorf("AvgKcal = %d, want 757", report.AvgKcal)
	}
	if report.DaysLogged != 3 {
		t.Errorf("DaysLogged = %d, want 3", report.DaysLogged)
	}
}

// The two 7-day windows must differ whenever the reference date is not a
// Sunday: the series is Monday-aligned, the report trails the reference.
func TestWeeklyWindows_AreDistinct(t *testing.T) {
	ref := date("2025-03-12") // Wednesday
	s := setupStats(t, ref, map[string]int{
		"2025-03-06": 1400, // in the trailing window, before the Monday
		"2025-03-15": 1600, // in the Monday week, after the reference
	})

	series, err := s.WeeklySeries(ref)
	if err != nil {
		t.Fatalf("WeeklySeries failed: %v", err)
	}
	report, err := s.WeeklyReport(ref)
	if err != nil {
		t.Fatalf("WeeklyReport failed: %v", err)
	}

	if series.TotalKcal != 1600 {
		t.Errorf("series TotalKcal = %d, want 1600 (Monday-aligned week)", series.TotalKcal)
	}
	if report.TotalKcal != 1400 {
		t.Errorf("report TotalKcal = %d, want 1400 (trailing window)", report.TotalKcal)
	}
}

func TestStreak(t *testing.T) {
	now := date("2025-03-12")

	t.Run("stops at over-goal day", func(t *testing.T) {
		s := setupStats(t, now, map[string]int{
			"2025-03-10": 2100, // over goal: breaks, not counted
			"2025-03-11": 1800, // yesterday: counts
		})
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 1 {
			t.Errorf("Streak = %d, want 1", got)
		}
	})

	t.Run("missing day breaks the streak", func(t *testing.T) {
		s := setupStats(t, now, map[string]int{
			"2025-03-09": 1800,
			// 2025-03-10 missing
			"2025-03-11": 1800,
		})
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 1 {
			t.Errorf("Streak = %d, want 1", got)
		}
	})

	t.Run("today adds when it qualifies", func(t *testing.T) {
		s := setupStats(t, now, map[string]int{
			"2025-03-11": 1800,
			"2025-03-12": 1500,
		})
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 2 {
			t.Errorf("Streak = %d, want 2", got)
		}
	})

	t.Run("incomplete today does not break the streak", func(t *testing.T) {
		s := setupStats(t, now, map[string]int{
			"2025-03-10": 1700,
			"2025-03-11": 1800,
			// today unlogged
		})
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 2 {
			t.Errorf("Streak = %d, want 2", got)
		}
	})

	t.Run("over-goal today is not counted", func(t *testing.T) {
		s := setupStats(t, now, map[string]int{
			"2025-03-11": 1800,
			"2025-03-12": 2500,
		})
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 1 {
			t.Errorf("Streak = %d, want 1", got)
		}
	})

	t.Run("no history", func(t *testing.T) {
		s := setupStats(t, now, nil)
		got, err := s.Streak(2000)
		if err != nil {
			t.Fatalf("Streak failed: %v", err)
		}
		if got != 0 {
			t.Errorf("Streak = %d, want 0", got)
		}
	})

	t.Run("rejects non-positive goal", func(t *testing.T) {
		s := setupStats(t, now, nil)
		if _, err := s.Streak(0); !apperrors.IsValidation(err) {
			t.Errorf("Streak(0) = %v, want validation error", err)
		}
	})
}

func TestStreak_LongRun(t *testing.T) {
	now := date("2025-03-12")
	days := make(map[string]int)
	for i := 1; i <= 30; i++ {
		days[now.AddDate(0, 0, -i).Format("2006-01-02")] = 1900
	}
	s := setupStats(t, now, days)

	got, err := s.Streak(2000)
	if err != nil {
		t.Fatalf("Streak failed: %v", err)
	}
	if got != 30 {
		t.Errorf("Streak = %d, want 30", got)
	}
}
