package spin

// Constraints is one participant's filter preferences. All fields are
// optional; a nil ceiling means "no limit".
type Constraints struct {
	DietFlags  map[string]bool `json:"dietFlags,omitempty"`
	Allergens  []string        `json:"allergens,omitempty"`
	BudgetMax  *int            `json:"budgetMax,omitempty"`
	TimeMaxMin *int            `json:"timeMaxMin,omitempty"`
}

// PowerUps are caller-supplied weights in [0,1] biasing scoring toward
// an attribute. Out-of-range values are clamped, not rejected.
type PowerUps struct {
	Healthy      float64 `json:"healthy"`
	Cheap        float64 `json:"cheap"`
	T30          float64 `json:"t30"`
	NoDuplicates bool    `json:"noDuplicates,omitempty"`
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (p PowerUps) clamped() PowerUps {
	p.Healthy = clamp01(p.Healthy)
	p.Cheap = clamp01(p.Cheap)
	p.T30 = clamp01(p.T30)
	return p
}

// Lock pins a reel index to a specific dish id or name. Locks override
// filters: the locked pick is returned even when the current
// constraints would exclude it.
type Lock struct {
	Index  int    `json:"index"`
	ItemID string `json:"itemId"`
}

// Request is the spin wire contract. Categories are in reel order; the
// order determines which filtered pool feeds which index.
type Request struct {
	Categories  []string     `json:"categories"`
	Locked      []Lock       `json:"locked,omitempty"`
	PowerUps    *PowerUps    `json:"powerUps,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
	Seed        string       `json:"seed,omitempty"`
}

// Debug is the audit trace for one spin. Together with the seed it is
// enough to reproduce every pick.
type Debug struct {
	Candidates [][]string  `json:"candidates"`
	Scores     [][]float64 `json:"scores"`
	Seed       string      `json:"seed"`
	// Reel indexes where the filtered pool was empty and the pick fell
	// back to the unfiltered category, bypassing constraints.
	Fallbacks []int `json:"fallbacks,omitempty"`
}

// Result is one pick per reel plus the mandatory trace.
type Result struct {
	Result []string `json:"result"`
	Debug  Debug    `json:"debug"`
}
