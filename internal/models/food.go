package models

// Category is the coarse macro profile of a catalog food, used to estimate
// its macronutrient split from calories alone.
type Category string

const (
	CategoryProteinHeavy Category = "protein-heavy"
	CategoryCarbHeavy    Category = "carb-heavy"
	CategoryFatHeavy     Category = "fat-heavy"
	CategoryMixed        Category = "mixed"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryProteinHeavy,
	CategoryCarbHeavy,
	CategoryFatHeavy,
	CategoryMixed,
}

// FoodItem is a named catalog entry with known calorie/macro values,
// reusable across many log entries. Names are unique (case-sensitive).
type FoodItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kcal     int      `json:"kcal"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
	Category Category `json:"category"`
}
