package simulation

import (
	"math/rand"

	"github.com/seenimoa/homesim/pkg/models"
)

// uniform draws from [lo, hi]. A collapsed range returns its single value
// exactly, so point configurations are fully deterministic.
func uniform(rng *rand.Rand, r models.Range) float64 {
	if r.Lo == r.Hi {
		return r.Lo
	}
	return r.Lo + rng.Float64()*(r.Hi-r.Lo)
}

// sampleScenario draws one trial's realization of the nine uncertain
// quantities. All draws are independent; the caller owns the RNG so
// sampling stays reproducible and free of global state.
func sampleScenario(rng *rand.Rand, r models.ScenarioRanges) models.TrialScenario {
	return models.TrialScenario{
		BaseIncome:     uniform(rng, r.BaseIncome),
		BaseExpense:    uniform(rng, r.BaseExpense),
		InterestRate:   uniform(rng, r.InterestRate),
		ClosingCostPct: uniform(rng, r.ClosingCostPct),
		UpfrontExtras:  uniform(rng, r.UpfrontExtras),
		ExtraIncome:    uniform(rng, r.ExtraIncome),
		ExtraCosts:     uniform(rng, r.ExtraCosts),
		PropertyGrowth: uniform(rng, r.PropertyGrowth),
		Inflation:      uniform(rng, r.Inflation),
	}
}
