// Package catalog keeps an in-memory mirror of the persistent food catalog
// for fast fuzzy lookup. The cache is a strict follower of the store: it is
// only written after the corresponding persistence write has succeeded, so
// once any mutating call returns the cache and the store agree.
package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
	"github.com/KantaKan/terminal-calorie-tracker/internal/nutrition"
	"github.com/KantaKan/terminal-calorie-tracker/internal/storage"
	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type Catalog struct {
	store storage.Provider
	items []models.FoodItem
}

// New creates a catalog backed by the given store. Call Load before use.
func New(store storage.Provider) *Catalog {
	return &Catalog{store: store}
}

// Load fetches the full catalog into memory. Called once at process start;
// the process cannot proceed without it.
func (c *Catalog) Load() error {
	foods, err := c.store.GetAllFoods()
	if err != nil {
		return fmt.Errorf("failed to load food catalog: %w", err)
	}
	c.items = foods
	return nil
}

// Len returns the number of cached foods.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns the cached foods in the order they were learned.
func (c *Catalog) All() []models.FoodItem {
	out := make([]models.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the cached food with the given id.
func (c *Catalog) Get(id string) (models.FoodItem, bool) {
	for _, f := range c.items {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// FindByName returns the cached food with the exact (case-sensitive) name.
func (c *Catalog) FindByName(name string) (models.FoodItem, bool) {
	for _, f := range c.items {
		if f.Name == name {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// foodSource adapts the cache to fuzzy matching over food names.
type foodSource []models.FoodItem

func (s foodSource) String(i int) string { return s[i].Name }
func (s foodSource) Len() int            { return len(s) }

// Search returns foods whose names approximately match the query, best match
// first. A blank query returns the whole catalog so the user can browse
// without typing.
func (c *Catalog) Search(query string) []models.FoodItem {
	if strings.TrimSpace(query) == "" {
		return c.All()
	}

	matches := fuzzy.FindFrom(query, foodSource(c.items))

	results := make([]models.FoodItem, 0, len(matches))
	for _, m := range matches {
		if m.Score < constants.SearchMinScore {
			continue
		}
		results = append(results, c.items[m.Index])
	}
	return results
}

// Learn validates and persists a new food, estimating its macros from the
// calorie count and category, then appends it to the cache. The store's
// unique name index backs up the in-memory duplicate check, so a race still
// surfaces as ErrDuplicateName rather than a partial write.
func (c *Catalog) Learn(name string, kcal int, category models.Category) (models.FoodItem, error) {
	name = strings.TrimSpace(name)
	if err := validation.FoodName(name); err != nil {
		return models.FoodItem{}, err
	}
	if err := validation.Calories(kcal); err != nil {
		return models.FoodItem{}, err
	}
	if _, exists := c.FindByName(name); exists {
		return models.FoodItem{}, apperrors.ErrDuplicateName
	}

	macros := nutrition.Estimate(kcal, category)
	food := models.FoodItem{
		ID:       uuid.New().String(),
		Name:     name,
		Kcal:     kcal,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
		Category: category,
	}

	if err := c.store.AddFood(food); err != nil {
		return models.FoodItem{}, err
	}

	c.items = append(c.items, food)
	return food, nil
}

// Update validates and persists new field values for an existing food, then
// mutates the cached item in place so the item keeps its identity and
// position.
func (c *Catalog) Update(id, newName string, newKcal int, newCategory models.Category) (models.FoodItem, error) {
	newName = strings.TrimSpace(newName)
	if err := validation.FoodName(newName); err != nil {
		return models.FoodItem{}, err
	}
	if err := validation.Calories(newKcal); err != nil {
		return models.FoodItem{}, err
	}

	idx := -1
	for i, f := range c.items {
		if f.ID == id {
			idx = i
		} else if f.Name == newName {
			// Duplicate check excludes the item being edited
			return models.FoodItem{}, apperrors.ErrDuplicateName
		}
	}
	if idx < 0 {
		return models.FoodItem{}, fmt.Errorf("food not found: %s", id)
	}

	macros := nutrition.Estimate(newKcal, newCategory)
	updated := models.FoodItem{
		ID:       id,
		Name:     newName,
		Kcal:     newKcal,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
		Category: newCategory,
	}

	if err := c.store.UpdateFood(updated); err != nil {
		return models.FoodItem{}, err
	}

	c.items[idx] = updated
	return updated, nil
}

// Remove persists a delete and drops the item from the cache.
func (c *Catalog) Remove(id string) error {
	if err := c.store.DeleteFood(id); err != nil {
		return err
	}

	for i, f := range c.items {
		if f.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return nil
}
