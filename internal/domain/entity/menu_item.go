// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category classifies a menu item on the storefront.
type Category string

const (
	// CategoryStarters indicates an appetizer.
	CategoryStarters Category = "Starters"
	// CategoryMainCourse indicates a main dish.
	CategoryMainCourse Category = "Main Course"
	// CategoryDesserts indicates a dessert.
	CategoryDesserts Category = "Desserts"
	// CategoryDrinks indicates a beverage.
	CategoryDrinks Category = "Drinks"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStarters, CategoryMainCourse, CategoryDesserts, CategoryDrinks:
		return true
	default:
		return false
	}
}

// MenuItem is a purchasable dish on the static catalog. Items are loaded
// once at process start; only the availability flag is mutable.
type MenuItem struct {
	ID          string   `json:"id"`          // Catalog identifier, unique across the menu.
	Name        string   `json:"name"`        // Display name of the dish.
	Description string   `json:"description"` // Short marketing description.
	Price       float64  `json:"price"`       // Unit price, non-negative.
	Category    Category `json:"category"`    // Menu section the dish belongs to.
	Image       string   `json:"image"`       // Image URL for the storefront card.
	Rating      float64  `json:"rating"`      // Customer rating, 0 to 5.
	Available   bool     `json:"available"`   // Whether the dish can currently be ordered.
}
