package catalog

import "context"

// InMemoryRepository serves the catalog from a fixed slice.
// Default when no DATABASE_URL is configured, and used by tests.
type InMemoryRepository struct {
	dishes []Dish
}

func NewInMemoryRepository(dishes []Dish) *InMemoryRepository {
	if dishes == nil {
		dishes = SeedDishes()
	}
	return &InMemoryRepository{dishes: dishes}
}

func (r *InMemoryRepository) GetByCategory(ctx context.Context, category string) ([]Dish, error) {
	var out []Dish
	for _, d := range r.dishes {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Dish, error) {
	for i := range r.dishes {
		if r.dishes[i].ID == id || r.dishes[i].Name == id {
			d := r.dishes[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, d := range r.dishes {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListFilters(ctx context.Context) (*Filters, error) {
	cats, _ := r.Categories(ctx)
	seenTag := make(map[string]bool)
	seenAllergen := make(map[string]bool)
	f := &Filters{Categories: cats}
	for _, d := range r.dishes {
		for _, t := range d.Tags {
			if !seenTag[t] {
				seenTag[t] = true
				f.Tags = append(f.Tags, t)
			}
		}
		for _, a := range d.Allergens {
			if !seenAllergen[a] {
				seenAllergen[a] = true
				f.Allergens = append(f.Allergens, a)
			}
		}
	}
	return f, nil
}
