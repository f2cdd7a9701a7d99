package spin

import (
	"sort"
	"strings"
)

// Merge combines several participants' constraint sets into one
// effective set:
//   - diet flags: AND, a flag survives only if every participant set it
//   - allergens: union, any exclusion applies to the whole group
//   - budget/time ceilings: minimum across participants that set one
//
// Pure and permutation-invariant: merging any reordering of the list
// yields the same result.
func Merge(list []Constraints) Constraints {
	var merged Constraints

	dietKeys := make(map[string]bool)
	for _, c := range list {
		for k := range c.DietFlags {
			dietKeys[k] = true
		}
	}
	if len(dietKeys) > 0 {
		merged.DietFlags = make(map[string]bool, len(dietKeys))
		for k := range dietKeys {
			val := true
			for _, c := range list {
				val = val && c.DietFlags[k]
			}
			merged.DietFlags[k] = val
		}
	}

	allergens := make(map[string]bool)
	for _, c := range list {
		for _, a := range c.Allergens {
			allergens[strings.ToLower(a)] = true
		}
	}
	for a := range allergens {
		merged.Allergens = append(merged.Allergens, a)
	}
	sort.Strings(merged.Allergens)

	for _, c := range list {
		if c.BudgetMax != nil && (merged.BudgetMax == nil || *c.BudgetMax < *merged.BudgetMax) {
			v := *c.BudgetMax
			merged.BudgetMax = &v
		}
		if c.TimeMaxMin != nil && (merged.TimeMaxMin == nil || *c.TimeMaxMin < *merged.TimeMaxMin) {
			v := *c.TimeMaxMin
			merged.TimeMaxMin = &v
		}
	}

	return merged
}
