package cli

import (
	"fmt"

	"github.com/KantaKan/terminal-calorie-tracker/internal/validation"
)

type FoodAddCmd struct {
	Name     string `arg:"" help:"Food name."`
	Kcal     int    `short:"k" help:"Calories per serving." required:""`
	Category string `short:"c" help:"Macro category (protein-heavy|carb-heavy|fat-heavy|mixed)." default:"mixed"`
}

func (c *FoodAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	category, err := validation.Category(c.Category)
	if err != nil {
		return err
	}

	food, err := ctx.Catalog.Learn(c.Name, c.Kcal, category)
	if err != nil {
		return err
	}

	fmt.Printf("Added food: %s (%d kcal, P:%dg C:%dg F:%dg)\n",
		food.Name, food.Kcal, food.Protein, food.Carbs, food.Fat)
	return nil
}

type FoodEditCmd struct {
	Name     string `arg:"" help:"Current name of the food to edit."`
	NewName  string `short:"n" help:"New name. Keeps the current name if omitted."`
	Kcal     int    `short:"k" help:"New calorie amount." required:""`
	Category string `short:"c" help:"Macro category (protein-heavy|carb-heavy|fat-heavy|mixed)." default:"mixed"`
}

func (c *FoodEditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	food, ok := ctx.Catalog.FindByName(c.Name)
	if !ok {
		return fmt.Errorf("no food named %q", c.Name)
	}

	category, err := validation.Category(c.Category)
	if err != nil {
		return err
	}

	name := c.NewName
	if name == "" {
		name = food.Name
	}

	updated, err := ctx.Catalog.Update(food.ID, name, c.Kcal, category)
	if err != nil {
		return err
	}

	fmt.Printf("Updated food: %s (%d kcal, P:%dg C:%dg F:%dg)\n",
		updated.Name, updated.Kcal, updated.Protein, updated.Carbs, updated.Fat)
	return nil
}

type FoodDeleteCmd struct {
	Name string `arg:"" help:"Name of the food to delete."`
}

func (c *FoodDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	food, ok := ctx.Catalog.FindByName(c.Name)
	if !ok {
		return fmt.Errorf("no food named %q", c.Name)
	}

	if err := ctx.Catalog.Remove(food.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted food: %s\n", food.Name)
	return nil
}

type FoodListCmd struct{}

func (c *FoodListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	foods := ctx.Catalog.All()
	if len(foods) == 0 {
		fmt.Println("No foods in the catalog")
		return nil
	}

	fmt.Println("Foods:")
	for _, food := range foods {
		printFood(food)
	}
	return nil
}

type FoodSearchCmd struct {
	Query string `arg:"" help:"Search query (typo tolerant)."`
}

func (c *FoodSearchCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	matches := ctx.Catalog.Search(c.Query)
	if len(matches) == 0 {
		fmt.Printf("No foods matching %q\n", c.Query)
		return nil
	}

	fmt.Printf("Matches for %q:\n", c.Query)
	for _, food := range matches {
		printFood(food)
	}
	return nil
}
