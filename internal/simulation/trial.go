package simulation

import (
	"math"
	"math/rand"

	"github.com/seenimoa/homesim/internal/finance"
	"github.com/seenimoa/homesim/internal/mortgage"
	"github.com/seenimoa/homesim/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Single-Trial Simulator
// ════════════════════════════════════════════════════════════════════

// runTrial simulates one randomized scenario for a purchase at price:
// upfront outlay, year-by-year net cash flows with inflation escalation
// and 10% debt rollover on shortfalls, terminal sale proceeds, and IRR.
func (e *Engine) runTrial(price float64, rng *rand.Rand) models.TrialResult {
	sc := sampleScenario(rng, e.cfg.Ranges)

	if e.cfg.AffordabilityGate && e.cfg.Savings < initialOutlay(price, e.cfg.DownPaymentPct, sc) {
		return models.TrialResult{Skipped: true}
	}

	flows, res := e.simulateScenario(price, sc)
	if irr, err := finance.IRR(flows); err == nil {
		res.IRR = irr
		res.IRRValid = true
	}
	return res
}

// initialOutlay is down payment + loan closing costs + upfront extras.
func initialOutlay(price, downPaymentPct float64, sc models.TrialScenario) float64 {
	downPayment := price * downPaymentPct
	loan := price - downPayment
	return downPayment + loan*sc.ClosingCostPct + sc.UpfrontExtras
}

// simulateScenario runs the deterministic cash-flow simulation for one
// already-sampled scenario and returns the completed series together with
// the trial's accumulables and favorability.
func (e *Engine) simulateScenario(price float64, sc models.TrialScenario) (models.CashFlowSeries, models.TrialResult) {
	downPayment := price * e.cfg.DownPaymentPct
	loan := price - downPayment
	closingCosts := loan * sc.ClosingCostPct
	outlay := downPayment + closingCosts + sc.UpfrontExtras

	annualMortgage := mortgage.MonthlyPayment(loan, sc.InterestRate, e.cfg.TermYears) * 12

	flows := make(models.CashFlowSeries, 0, e.cfg.Years+1)
	flows = append(flows, -outlay)

	income := sc.BaseIncome
	expense := sc.BaseExpense
	extraIncome := sc.ExtraIncome
	extraCosts := sc.ExtraCosts

	debt := 0.0
	net := 0.0
	for year := 1; year <= e.cfg.Years; year++ {
		// Inflation escalation compounds every year, year 1 included.
		income *= 1 + sc.Inflation
		expense *= 1 + sc.Inflation
		extraIncome *= 1 + sc.Inflation
		extraCosts *= 1 + sc.Inflation

		net = income + extraIncome - expense - annualMortgage - extraCosts

		recorded := net
		if net < 0 {
			// Shortfall rolls into debt, which accrues 10% interest.
			debt += -net
			debt *= debtInterestFactor
			if e.cfg.NegativeFlowMode == NegativeFlowZero {
				recorded = 0
			}
		} else if net > debt {
			net -= debt
			debt = 0
			recorded = net
		} else {
			debt -= net
			net = 0
			recorded = 0
		}
		flows = append(flows, recorded)
	}

	// Sell at the appreciated price less fixed sale closing costs; the
	// proceeds land in the final year's entry.
	gross := price * math.Pow(1+sc.PropertyGrowth, float64(e.cfg.Years))
	flows[len(flows)-1] += gross * (1 - saleClosingCostPct)

	return flows, models.TrialResult{
		// Favorability is a single-year snapshot: the final simulated
		// year's net flow after debt servicing, sale excluded.
		Favorable: net >= 0,

		DownPayment:     downPayment,
		ClosingCosts:    closingCosts,
		UpfrontExtras:   sc.UpfrontExtras,
		NetUpfront:      e.cfg.Savings - outlay,
		MortgagePayment: annualMortgage,
		BaseIncome:      income,
		BaseExpense:     expense,
		ExtraIncome:     extraIncome,
		ExtraCosts:      extraCosts,
		NetAnnualProfit: net,
	}
}
