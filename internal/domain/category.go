package domain

import "fmt"

// Category is the topic domain a round's subject is drawn from.
type Category string

// Supported game categories
const (
	CategoryAnimals Category = "animals"
	CategoryPlants  Category = "plants"
	CategoryObjects Category = "objects"
)

// categoryTopics maps each category to the phrase used when prompting for options.
var categoryTopics = map[Category]string{
	CategoryAnimals: "con vật",
	CategoryPlants:  "loài cây hoặc rau củ",
	CategoryObjects: "đồ vật trong nhà",
}

// categoryLabels holds the names shown on the category picker.
var categoryLabels = map[Category]string{
	CategoryAnimals: "Con Vật",
	CategoryPlants:  "Cây Cối",
	CategoryObjects: "Đồ Vật",
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryAnimals, CategoryPlants, CategoryObjects}
}

// ParseCategory converts a raw string into a Category.
// Returns ErrInvalidCategory if the value is not a known category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	_, ok := categoryTopics[c]
	return ok
}

// Topic returns the localized topic phrase for the category, or an empty
// string for an unknown category.
func (c Category) Topic() string {
	return categoryTopics[c]
}

// Label returns the localized display label for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}
