package spin

import (
	"math"

	"mealslot/internal/catalog"
)

// Score maps a dish and power-up weights to a desirability value.
// Monotonically increasing in alignment between dish attributes and
// weights. The raw value can be negative (the t30 penalty); softmax
// normalization keeps every candidate's probability positive.
func Score(d catalog.Dish, pu PowerUps) float64 {
	pu = pu.clamped()

	health := d.HealthScore
	if health == 0 {
		health = 0.5
	}
	inversePrice := 1 - clamp01(float64(d.PriceCents)/1000)
	inverseTime := 1 - clamp01(float64(d.TimeMin)/60)

	s := 0.0
	s += 3 * pu.Healthy * health
	s += 3 * pu.Cheap * inversePrice

	if pu.T30 > 0 {
		if d.TimeMin > 30 {
			s -= pu.T30
		}
		s += 2 * pu.T30 * inverseTime
	}
	return s
}

const (
	defaultTemperature = 0.6
	minTemperature     = 0.05
)

// Softmax normalizes scores into selection probabilities. Temperature
// controls sharpness; it is floored at minTemperature. Max-subtraction
// keeps the exponentials in range.
func Softmax(xs []float64, temperature float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	t := math.Max(minTemperature, temperature)

	maxX := xs[0]
	for _, x := range xs[1:] {
		if x > maxX {
			maxX = x
		}
	}

	exps := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		exps[i] = math.Exp((x - maxX) / t)
		sum += exps[i]
	}
	if sum == 0 {
		sum = 1
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// pickByProbs draws one index from the cumulative distribution using a
// single RNG value. Floating-point drift that leaves no match selects
// the last candidate.
func pickByProbs(rng *RNG, probs []float64) int {
	r := rng.Next()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if r <= cum {
			return i
		}
	}
	return len(probs) - 1
}
