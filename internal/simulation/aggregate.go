package simulation

import (
	"math/rand"

	"github.com/seenimoa/homesim/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Monte Carlo Aggregator — one purchase price, many trials
// ════════════════════════════════════════════════════════════════════

// sums accumulates the per-trial quantities whose means appear in the
// summary. Addition is associative and commutative, so fold order never
// affects the totals.
type sums struct {
	downPayment     float64
	closingCosts    float64
	upfrontExtras   float64
	netUpfront      float64
	mortgagePayment float64
	baseIncome      float64
	baseExpense     float64
	extraIncome     float64
	extraCosts      float64
	netAnnualProfit float64
}

func (s *sums) add(tr models.TrialResult) {
	s.downPayment += tr.DownPayment
	s.closingCosts += tr.ClosingCosts
	s.upfrontExtras += tr.UpfrontExtras
	s.netUpfront += tr.NetUpfront
	s.mortgagePayment += tr.MortgagePayment
	s.baseIncome += tr.BaseIncome
	s.baseExpense += tr.BaseExpense
	s.extraIncome += tr.ExtraIncome
	s.extraCosts += tr.ExtraCosts
	s.netAnnualProfit += tr.NetAnnualProfit
}

// SimulatePrice runs the trials for a single purchase price seeded from
// the engine's base seed.
func (e *Engine) SimulatePrice(price float64) models.PriceSummary {
	rng := rand.New(rand.NewSource(e.seed))
	return e.RunPrice(price, rng)
}

// RunPrice executes the configured number of trials for one purchase price
// using the supplied RNG and reduces them to a PriceSummary.
func (e *Engine) RunPrice(price float64, rng *rand.Rand) models.PriceSummary {
	var (
		acc         sums
		favorable   int
		completed   int
		skipped     int
		validIRRs   int
		irrSum      float64
		aboveTarget int
	)

	for i := 0; i < e.cfg.Trials; i++ {
		tr := e.runTrial(price, rng)
		if tr.Skipped {
			skipped++
			continue
		}
		completed++
		acc.add(tr)

		if tr.Favorable {
			favorable++
		}
		if tr.IRRValid {
			validIRRs++
			irrSum += tr.IRR
			if tr.IRR > e.cfg.TargetIRR {
				aboveTarget++
			}
		}
	}

	total := e.cfg.Trials
	summary := models.PriceSummary{
		PurchasePrice: price,
		Trials:        total,
		Completed:     completed,
		Skipped:       skipped,

		// The favorable denominator is always total trials, skipped
		// included, so gated-out trials read as unfavorable.
		FavorablePct: float64(favorable) / float64(total) * 100,

		ValidIRRs: validIRRs,
	}

	if validIRRs > 0 {
		summary.MeanIRR = irrSum / float64(validIRRs)
		summary.PctAboveTarget = float64(aboveTarget) / float64(validIRRs) * 100
	}

	// Mean denominator is configurable: total trials reproduces the
	// original behavior (skipped trials silently pull means down),
	// completed-only reports means over trials that actually ran.
	denom := float64(total)
	if !e.cfg.IncludeSkippedInDenominator {
		if completed == 0 {
			return summary
		}
		denom = float64(completed)
	}

	summary.MeanDownPayment = acc.downPayment / denom
	summary.MeanClosingCosts = acc.closingCosts / denom
	summary.MeanUpfrontExtras = acc.upfrontExtras / denom
	summary.MeanNetUpfront = acc.netUpfront / denom
	summary.MeanMortgagePayment = acc.mortgagePayment / denom
	summary.MeanBaseIncome = acc.baseIncome / denom
	summary.MeanBaseExpense = acc.baseExpense / denom
	summary.MeanExtraIncome = acc.extraIncome / denom
	summary.MeanExtraCosts = acc.extraCosts / denom
	summary.MeanNetAnnualProfit = acc.netAnnualProfit / denom
	return summary
}
