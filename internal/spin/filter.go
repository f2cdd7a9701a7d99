package spin

import (
	"strings"

	"mealslot/internal/catalog"
)

func violatesDiet(d catalog.Dish, dietFlags map[string]bool) bool {
	if len(dietFlags) == 0 {
		return false
	}
	// vegetarian blocks meat-category dishes unless marked vegetarian
	if dietFlags["vegetarian"] && d.Category == "meat" && !d.HasTag("vegetarian") {
		return true
	}
	// vegan blocks the whole meat category plus anything carrying an
	// animal-derived allergen
	if dietFlags["vegan"] {
		if d.Category == "meat" {
			return true
		}
		for _, a := range d.Allergens {
			switch strings.ToLower(a) {
			case "dairy", "egg":
				return true
			}
		}
	}
	return false
}

// violatesAllergens matches by set membership on the dish's allergen
// set, case-insensitive.
func violatesAllergens(d catalog.Dish, excluded []string) bool {
	if len(excluded) == 0 {
		return false
	}
	for _, e := range excluded {
		for _, a := range d.Allergens {
			if strings.EqualFold(a, e) {
				return true
			}
		}
	}
	return false
}

func withinBudgetTime(d catalog.Dish, c Constraints) bool {
	if c.BudgetMax != nil && d.PriceCents > *c.BudgetMax {
		return false
	}
	if c.TimeMaxMin != nil && d.TimeMin > *c.TimeMaxMin {
		return false
	}
	return true
}

// FilterCandidates returns the admissible subset of dishes for a
// category under the given constraints, preserving catalog order.
// An empty result is a valid, expected output.
func FilterCandidates(category string, dishes []catalog.Dish, c Constraints) []catalog.Dish {
	var out []catalog.Dish
	for _, d := range dishes {
		if d.Category != category {
			continue
		}
		if violatesDiet(d, c.DietFlags) {
			continue
		}
		if violatesAllergens(d, c.Allergens) {
			continue
		}
		if !withinBudgetTime(d, c) {
			continue
		}
		out = append(out, d)
	}
	return out
}
