package catalog

import "context"

// Repository defines all read operations over the dish catalog.
// The catalog is owned by storage; spin and party only read it.
type Repository interface {

	// All dishes in a category, in stable catalog order.
	GetByCategory(ctx context.Context, category string) ([]Dish, error)

	// Lookup by id or (for convenience) exact name. Nil when absent.
	GetByID(ctx context.Context, id string) (*Dish, error)

	// Distinct categories in catalog order.
	Categories(ctx context.Context) ([]string, error)

	// Distinct categories, tags and allergens for filter menus.
	ListFilters(ctx context.Context) (*Filters, error)
}
