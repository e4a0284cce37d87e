package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
)

func setupCatalog(t *testing.T) *Catalog {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	c := New(store)
	if err := c.Load(); err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return c
}

func TestCatalog_Learn(t *testing.T) {
	c := setupCatalog(t)

	food, err := c.Learn("Apple", 95, models.CategoryCarbHeavy)
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	if food.ID == "" {
		t.Error("Learn returned food without a generated id")
	}
	if food.Protein != 4 || food.Carbs != 17 || food.Fat != 2 {
		t.Errorf("Learn macros = %d/%d/%d, want 4/17/2", food.Protein, food.Carbs, food.Fat)
	}

	cached, ok := c.Get(food.ID)
	if !ok {
		t.Fatal("learned food missing from cache")
	}
	if cached != food {
		t.Errorf("cached item %+v differs from returned item %+v", cached, food)
	}
}

func TestCatalog_LearnValidation(t *testing.T) {
	c := setupCatalog(t)

	if _, err := c.Learn("   ", 100, models.CategoryMixed); !apperrors.IsValidation(err) {
		t.Errorf("Learn with blank name = %v, want validation error", err)
	}
	if _, err := c.Learn("Mystery", -10, models.CategoryMixed); !apperrors.IsValidation(err) {
		t.Errorf("Learn with negative kcal = %v, want validation error", err)
	}
	if c.Len() != 0 {
		t.Errorf("rejected input still reached the cache: %d items", c.Len())
	}
}

func TestCatalog_LearnDuplicate(t *testing.T) {
	c := setupCatalog(t)

	if _, err := c.Learn("Apple", 95, models.CategoryCarbHeavy); err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	_, err := c.Learn("Apple", 100, models.CategoryMixed)
	if !errors.Is(err, apperrors.ErrDuplicateName) {
		t.Errorf("duplicate Learn = %v, want ErrDuplicateName", err)
	}

	// The catalog still contains exactly one Apple with the original values
	foods := c.All()
	if len(foods) != 1 || foods[0].Name != "Apple" || foods[0].Kcal != 95 {
		t.Errorf("catalog after rejected duplicate = %+v", foods)
	}

	// Case-sensitive: "apple" is not a duplicate of "Apple"
	if _, err := c.Learn("apple", 95, models.CategoryCarbHeavy); err != nil {
		t.Errorf("Learn with different case = %v, want success", err)
	}
}

func TestCatalog_Search(t *testing.T) {
	c := setupCatalog(t)

	for _, f := range []struct {
		name string
		kcal int
	}{
		{"Chicken Breast", 165},
		{"Chicken Soup", 120},
		{"Cheddar Cheese", 113},
		{"Oatmeal", 300},
	} {
		if _, err := c.Learn(f.name, f.kcal, models.CategoryMixed); err != nil {
			t.Fatalf("Learn(%s) failed: %v", f.name, err)
		}
	}

	t.Run("typo-tolerant match, best first", func(t *testing.T) {
		results := c.Search("chkn")
		if len(results) == 0 {
			t.Fatal("Search(\"chkn\") returned nothing")
		}
		for _, r := range results {
			if r.Name == "Oatmeal" {
				t.Errorf("Search(\"chkn\") matched unrelated food %q", r.Name)
			}
		}
		if results[0].Name != "Chicken Breast" && results[0].Name != "Chicken Soup" {
			t.Errorf("best match = %q, want a chicken item", results[0].Name)
		}
	})

	t.Run("empty query returns everything in learn order", func(t *testing.T) {
		results := c.Search("   ")
		if len(results) != 4 {
			t.Fatalf("blank query returned %d items, want 4", len(results))
		}
		if results[0].Name != "Chicken Breast" || results[3].Name != "Oatmeal" {
			t.Errorf("blank query order = %+v", results)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if results := c.Search("xyzzy"); len(results) != 0 {
			t.Errorf("Search(\"xyzzy\") = %+v, want empty", results)
		}
	})
}

func TestCatalog_Update(t *testing.T) {
	c := setupCatalog(t)

	apple, err := c.Learn("Apple", 95, models.CategoryCarbHeavy)
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}
	if _, err := c.Learn("Banana", 105, models.CategoryCarbHeavy); err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	t.Run("recomputes macros and keeps identity", func(t *testing.T) {
		updated, err := c.Update(apple.ID, "Baked Apple", 200, models.CategoryMixed)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.ID != apple.ID {
			t.Errorf("Update changed id: %s -> %s", apple.ID, updated.ID)
		}
		// 200 kcal mixed: 15/20/7
		if updated.Protein != 15 || updated.Carbs != 20 || updated.Fat != 7 {
			t.Errorf("Update macros = %d/%d/%d, want 15/20/7", updated.Protein, updated.Carbs, updated.Fat)
		}

		// Cache position is unchanged: the edited item is still first
		if all := c.All(); all[0].Name != "Baked Apple" {
			t.Errorf("edited item moved in cache: %+v", all)
		}
	})

	t.Run("rename onto another food is rejected", func(t *testing.T) {
		if _, err := c.Update(apple.ID, "Banana", 100, models.CategoryMixed); !errors.Is(err, apperrors.ErrDuplicateName) {
			t.Errorf("Update rename onto duplicate = %v, want ErrDuplicateName", err)
		}
	})

	t.Run("keeping own name is allowed", func(t *testing.T) {
		if _, err := c.Update(apple.ID, "Baked Apple", 210, models.CategoryMixed); err != nil {
			t.Errorf("Update keeping own name = %v, want success", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := c.Update("nope", "Ghost", 1, models.CategoryMixed); err == nil {
			t.Error("Update of missing id succeeded, want error")
		}
	})
}

func TestCatalog_Remove(t *testing.T) {
	c := setupCatalog(t)

	apple, err := c.Learn("Apple", 95, models.CategoryCarbHeavy)
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	if err := c.Remove(apple.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := c.Get(apple.ID); ok {
		t.Error("removed food still in cache")
	}

	// The name is free again
	if _, err := c.Learn("Apple", 52, models.CategoryCarbHeavy); err != nil {
		t.Errorf("Learn after Remove = %v, want success", err)
	}
}
