package spin

import (
	"errors"
	"fmt"

	"mealslot/internal/catalog"
)

// ErrNoCandidates means a reel's filtered pool was empty and the
// unfiltered category fallback was empty too. A reportable outcome,
// not a system fault.
var ErrNoCandidates = errors.New("no candidates")

// Reel is one selection slot: a category plus its filtered candidate
// pool and the unfiltered category slice used as a last-resort
// fallback.
type Reel struct {
	Category string
	Pool     []catalog.Dish
	Full     []catalog.Dish
}

// ReelResult is the pick for one reel plus its trace.
type ReelResult struct {
	Pick       string
	Candidates []string
	Scores     []float64
	Fallback   bool
	Locked     bool
}

// SpinReels draws one pick per reel. Reels are processed in slice
// order and share one RNG advanced sequentially; an unlocked reel
// consumes exactly one draw (the dedup shuffle consumes its draws up
// front), and a locked reel consumes none. Re-running with the same
// inputs and seed reproduces the whole multi-reel result.
//
// A lock forces the pick even when the locked dish is excluded by the
// current filters. An empty filtered pool falls back to a uniform draw
// over the unfiltered category, flagged in the trace because it
// bypasses the caller's constraints.
func SpinReels(reels []Reel, locks map[int]string, pu PowerUps, rng *RNG) ([]ReelResult, error) {
	pools := make([][]catalog.Dish, len(reels))
	for i, reel := range reels {
		pools[i] = reel.Pool
	}
	if pu.NoDuplicates {
		dealDistinctPools(reels, locks, pools, rng)
	}

	results := make([]ReelResult, 0, len(reels))
	for i, reel := range reels {
		if lockedID, ok := locks[i]; ok {
			name := resolveLockName(lockedID, reel.Full)
			results = append(results, ReelResult{
				Pick:       name,
				Candidates: []string{name},
				Scores:     []float64{1.0},
				Locked:     true,
			})
			continue
		}

		pool := pools[i]
		if len(pool) == 0 {
			// degraded mode: ignore constraints rather than fail the
			// whole spin, and make it visible in the trace
			if len(reel.Full) == 0 {
				return nil, fmt.Errorf("%w for category %q", ErrNoCandidates, reel.Category)
			}
			idx := int(rng.Next() * float64(len(reel.Full)))
			if idx >= len(reel.Full) {
				idx = len(reel.Full) - 1
			}
			pick := reel.Full[idx]
			results = append(results, ReelResult{
				Pick:       pick.Name,
				Candidates: []string{pick.Name},
				Scores:     []float64{1.0},
				Fallback:   true,
			})
			continue
		}

		scores := make([]float64, len(pool))
		for k, d := range pool {
			scores[k] = Score(d, pu)
		}
		probs := Softmax(scores, defaultTemperature)
		pick := pool[pickByProbs(rng, probs)]

		names := make([]string, len(pool))
		for k, d := range pool {
			names[k] = d.Name
		}
		results = append(results, ReelResult{
			Pick:       pick.Name,
			Candidates: names,
			Scores:     scores,
		})
	}
	return results, nil
}

// dealDistinctPools partitions each shared-category pool disjointly
// across its unlocked reels: locked dishes are pulled out and pinned
// to their reel, the remainder is shuffled and dealt round-robin so no
// two reels can draw the same base dish. Categories are processed in
// first-reel order to keep RNG consumption deterministic.
func dealDistinctPools(reels []Reel, locks map[int]string, pools [][]catalog.Dish, rng *RNG) {
	seen := make(map[string]bool)
	for first, reel := range reels {
		if seen[reel.Category] {
			continue
		}
		seen[reel.Category] = true

		var indexes []int
		for i := first; i < len(reels); i++ {
			if reels[i].Category != reel.Category {
				continue
			}
			if _, locked := locks[i]; !locked {
				indexes = append(indexes, i)
			}
		}
		if len(indexes) == 0 {
			continue
		}

		lockedIDs := make(map[string]bool)
		for i, id := range locks {
			if i < len(reels) && reels[i].Category == reel.Category {
				lockedIDs[id] = true
			}
		}
		if len(indexes) == 1 && len(lockedIDs) == 0 {
			continue
		}

		var shared []catalog.Dish
		for _, d := range reels[first].Pool {
			if !lockedIDs[d.ID] && !lockedIDs[d.Name] {
				shared = append(shared, d)
			}
		}
		if len(indexes) == 1 {
			// a single unlocked reel still must not redraw a dish its
			// locked sibling already holds
			pools[indexes[0]] = shared
			continue
		}
		shuffle(shared, rng)

		parts := make([][]catalog.Dish, len(indexes))
		for k, d := range shared {
			slot := k % len(indexes)
			parts[slot] = append(parts[slot], d)
		}
		for k, i := range indexes {
			pools[i] = parts[k]
		}
	}
}

// Fisher-Yates on the request RNG, so the deal is reproducible from
// the seed.
func shuffle(dishes []catalog.Dish, rng *RNG) {
	for i := len(dishes) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		if j > i {
			j = i
		}
		dishes[i], dishes[j] = dishes[j], dishes[i]
	}
}

// resolveLockName maps a locked dish id to its display name when the
// dish is present in the category; an unknown id is passed through
// unchanged so the lock is still honored.
func resolveLockName(lockedID string, full []catalog.Dish) string {
	for _, d := range full {
		if d.ID == lockedID || d.Name == lockedID {
			return d.Name
		}
	}
	return lockedID
}
