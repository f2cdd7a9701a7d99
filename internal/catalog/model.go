package catalog

// Dish is a single catalog entry. Immutable once loaded for the
// duration of a request.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Tags        []string `json:"tags"`
	Allergens   []string `json:"allergens"`
	Kcal        int      `json:"kcal,omitempty"`
	ProteinG    int      `json:"protein_g,omitempty"`
	TimeMin     int      `json:"time_min"`
	PriceCents  int      `json:"price_cents"`
	HealthScore float64  `json:"healthScore"`
}

// HasTag reports whether the dish carries the given tag.
func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Filters lists the distinct tags and allergens present in the catalog,
// used by clients to populate filter menus.
type Filters struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Allergens  []string `json:"allergens"`
}
