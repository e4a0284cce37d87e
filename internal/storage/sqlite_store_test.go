package storage

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// checkTotalsMatchEntries asserts the aggregate invariant: every total equals
// the sum of the corresponding field across the day's entries.
func checkTotalsMatchEntries(t *testing.T, day models.DailyLog) {
	t.Helper()

	var kcal, protein, carbs, fat int
	for _, e := range day.Entries {
		kcal += e.Kcal
		protein += e.Protein
		carbs += e.Carbs
		fat += e.Fat
	}

	if day.TotalKcal != kcal {
		t.Errorf("day %s: TotalKcal = %d, entries sum to %d", day.Date, day.TotalKcal, kcal)
	}
	if day.TotalProtein != protein {
		t.Errorf("day %s: TotalProtein = %d, entries sum to %d", day.Date, day.TotalProtein, protein)
	}
	if day.TotalCarbs != carbs {
		t.Errorf("day %s: TotalCarbs = %d, entries sum to %d", day.Date, day.TotalCarbs, carbs)
	}
	if day.TotalFat != fat {
		t.Errorf("day %s: TotalFat = %d, entries sum to %d", day.Date, day.TotalFat, fat)
	}
}

func TestSQLiteStore_InitCreatesDefaultSettings(t *testing.T) {
	store := setupSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.DailyGoalKcal != 2000 {
		t.Errorf("default DailyGoalKcal = %d, want 2000", settings.DailyGoalKcal)
	}
}

func TestSQLiteStore_SaveAndGetSettings(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveSettings(models.Settings{DailyGoalKcal: 1800, Timezone: "Local"}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.DailyGoalKcal != 1800 {
		t.Errorf("DailyGoalKcal = %d, want 1800", settings.DailyGoalKcal)
	}
}

func TestSQLiteStore_Foods(t *testing.T) {
	store := setupSQLiteStore(t)

	apple := models.FoodItem{
		ID: "food-1", Name: "Apple", Kcal: 95, Protein: 4, Carbs: 17, Fat: 2,
		Category: models.CategoryCarbHeavy,
	}

	t.Run("add and get", func(t *testing.T) {
		if err := store.AddFood(apple); err != nil {
			t.Fatalf("AddFood failed: %v", err)
		}

		got, err := store.GetFood("food-1")
		if err != nil {
			t.Fatalf("GetFood failed: %v", err)
		}
		if got != apple {
			t.Errorf("GetFood = %+v, want %+v", got, apple)
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		dup := models.FoodItem{ID: "food-2", Name: "Apple", Kcal: 100, Category: models.CategoryMixed}
		if err := store.AddFood(dup); !errors.Is(err, apperrors.ErrDuplicateName) {
			t.Errorf("AddFood duplicate = %v, want ErrDuplicateName", err)
		}

		foods, err := store.GetAllFoods()
		if err != nil {
			t.Fatalf("GetAllFoods failed: %v", err)
		}
		if len(foods) != 1 || foods[0].Kcal != 95 {
			t.Errorf("catalog after rejected duplicate = %+v, want single Apple with 95 kcal", foods)
		}
	})

	t.Run("update", func(t *testing.T) {
		updated := apple
		updated.Name = "Green Apple"
		updated.Kcal = 80
		if err := store.UpdateFood(updated); err != nil {
			t.Fatalf("UpdateFood failed: %v", err)
		}

		got, err := store.GetFood("food-1")
		if err != nil {
			t.Fatalf("GetFood failed: %v", err)
		}
		if got.Name != "Green Apple" || got.Kcal != 80 {
			t.Errorf("after update GetFood = %+v", got)
		}
	})

	t.Run("update missing food", func(t *testing.T) {
		if err := store.UpdateFood(models.FoodItem{ID: "nope", Name: "Ghost"}); err == nil {
			t.Error("UpdateFood of missing id succeeded, want error")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteFood("food-1"); err != nil {
			t.Fatalf("DeleteFood failed: %v", err)
		}
		if _, err := store.GetFood("food-1"); err == nil {
			t.Error("GetFood after delete succeeded, want error")
		}
	})
}

func TestSQLiteStore_GetAllFoodsPreservesLearnOrder(t *testing.T) {
	store := setupSQLiteStore(t)

	names := []string{"Zucchini", "Apple", "Miso Soup"}
	for i, name := range names {
		food := models.FoodItem{ID: name, Name: name, Kcal: 50 + i, Category: models.CategoryMixed}
		if err := store.AddFood(food); err != nil {
			t.Fatalf("AddFood(%s) failed: %v", name, err)
		}
	}

	foods, err := store.GetAllFoods()
	if err != nil {
		t.Fatalf("GetAllFoods failed: %v", err)
	}
	if len(foods) != len(names) {
		t.Fatalf("got %d foods, want %d", len(foods), len(names))
	}
	for i, name := range names {
		if foods[i].Name != name {
			t.Errorf("foods[%d].Name = %q, want %q", i, foods[i].Name, name)
		}
	}
}

func TestSQLiteStore_AppendEntry(t *testing.T) {
	store := setupSQLiteStore(t)
	date := "2025-03-10"

	first := models.LogEntry{
		ID: "e1", Name: "Oatmeal", Kcal: 300, Protein: 11, Carbs: 53, Fat: 5,
		Time: "08:15", TimeSlot: models.SlotMorning,
	}
	second := models.LogEntry{
		ID: "e2", Name: "Chicken Salad", Kcal: 450, Protein: 45, Carbs: 23, Fat: 15,
		Time: "13:05", TimeSlot: models.SlotAfternoon,
	}

	if err := store.AppendEntry(date, first); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	if err := store.AppendEntry(date, second); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	day, err := store.GetDay(date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}

	if len(day.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(day.Entries))
	}
	if day.Entries[0].ID != "e1" || day.Entries[1].ID != "e2" {
		t.Errorf("entries out of insertion order: %+v", day.Entries)
	}
	if day.TotalKcal != 750 {
		t.Errorf("TotalKcal = %d, want 750", day.TotalKcal)
	}
	checkTotalsMatchEntries(t, day)
}

func TestSQLiteStore_UpdateEntry(t *testing.T) {
	store := setupSQLiteStore(t)
	date := "2025-03-10"

	entries := []models.LogEntry{
		{ID: "e1", Name: "Toast", Kcal: 200, Protein: 8, Carbs: 35, Fat: 3, Time: "08:00", TimeSlot: models.SlotMorning},
		{ID: "e2", Name: "Banana", Kcal: 105, Protein: 1, Carbs: 27, Fat: 0, Time: "10:30", TimeSlot: models.SlotMorning},
	}
	for _, e := range entries {
		if err := store.AppendEntry(date, e); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	t.Run("applies exact delta", func(t *testing.T) {
		updated := models.LogEntry{ID: "e1", Name: "Toast with Jam", Kcal: 350, Protein: 8, Carbs: 70, Fat: 3}
		if err := store.UpdateEntry(date, updated); err != nil {
			t.Fatalf("UpdateEntry failed: %v", err)
		}

		day, err := store.GetDay(date)
		if err != nil {
			t.Fatalf("GetDay failed: %v", err)
		}
		// 200 -> 350 must shift the total by exactly +150
		if day.TotalKcal != 455 {
			t.Errorf("TotalKcal = %d, want 455", day.TotalKcal)
		}
		checkTotalsMatchEntries(t, day)
	})

	t.Run("preserves time and slot", func(t *testing.T) {
		day, err := store.GetDay(date)
		if err != nil {
			t.Fatalf("GetDay failed: %v", err)
		}
		if day.Entries[0].Time != "08:00" || day.Entries[0].TimeSlot != models.SlotMorning {
			t.Errorf("edit changed the entry's occasion: %+v", day.Entries[0])
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		err := store.UpdateEntry(date, models.LogEntry{ID: "gone", Name: "X", Kcal: 1})
		if !errors.Is(err, apperrors.ErrEntryNotFound) {
			t.Errorf("UpdateEntry of missing id = %v, want ErrEntryNotFound", err)
		}
	})

	t.Run("wrong day", func(t *testing.T) {
		err := store.UpdateEntry("2025-03-11", models.LogEntry{ID: "e1", Name: "X", Kcal: 1})
		if !errors.Is(err, apperrors.ErrEntryNotFound) {
			t.Errorf("UpdateEntry on wrong day = %v, want ErrEntryNotFound", err)
		}
	})
}

func TestSQLiteStore_RemoveEntry(t *testing.T) {
	store := setupSQLiteStore(t)
	date := "2025-03-10"

	entries := []models.LogEntry{
		{ID: "e1", Name: "Toast", Kcal: 200, Protein: 8, Carbs: 35, Fat: 3, Time: "08:00", TimeSlot: models.SlotMorning},
		{ID: "e2", Name: "Banana", Kcal: 105, Protein: 1, Carbs: 27, Fat: 0, Time: "10:30", TimeSlot: models.SlotMorning},
	}
	for _, e := range entries {
		if err := store.AppendEntry(date, e); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	if err := store.RemoveEntry(date, "e1"); err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}

	day, err := store.GetDay(date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(day.Entries) != 1 || day.Entries[0].ID != "e2" {
		t.Errorf("entries after remove = %+v", day.Entries)
	}
	if day.TotalKcal != 105 {
		t.Errorf("TotalKcal = %d, want 105", day.TotalKcal)
	}
	checkTotalsMatchEntries(t, day)

	if err := store.RemoveEntry(date, "e1"); !errors.Is(err, apperrors.ErrEntryNotFound) {
		t.Errorf("second RemoveEntry = %v, want ErrEntryNotFound", err)
	}
}

func TestSQLiteStore_GetDayAbsent(t *testing.T) {
	store := setupSQLiteStore(t)

	if _, err := store.GetDay("1999-01-01"); !errors.Is(err, apperrors.ErrDayNotFound) {
		t.Errorf("GetDay for absent date = %v, want ErrDayNotFound", err)
	}
}

func TestSQLiteStore_GetDayIsIdempotent(t *testing.T) {
	store := setupSQLiteStore(t)
	date := "2025-03-10"

	entry := models.LogEntry{ID: "e1", Name: "Rice", Kcal: 205, Protein: 4, Carbs: 45, Fat: 0,
		Time: "12:00", TimeSlot: models.SlotAfternoon}
	if err := store.AppendEntry(date, entry); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	first, err := store.GetDay(date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	second, err := store.GetDay(date)
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}

	if first.TotalKcal != second.TotalKcal || first.TotalProtein != second.TotalProtein ||
		first.TotalCarbs != second.TotalCarbs || first.TotalFat != second.TotalFat {
		t.Errorf("repeated GetDay returned different totals: %+v vs %+v", first, second)
	}
}

func TestSQLiteStore_ListDaysMostRecentFirst(t *testing.T) {
	store := setupSQLiteStore(t)

	for _, date := range []string{"2025-03-08", "2025-03-10", "2025-03-09"} {
		entry := models.LogEntry{ID: "e-" + date, Name: "Meal", Kcal: 500,
			Time: "12:00", TimeSlot: models.SlotAfternoon}
		if err := store.AppendEntry(date, entry); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	days, err := store.ListDays()
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}

	want := []string{"2025-03-10", "2025-03-09", "2025-03-08"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i, date := range want {
		if days[i].Date != date {
			t.Errorf("days[%d].Date = %s, want %s", i, days[i].Date, date)
		}
	}
}
