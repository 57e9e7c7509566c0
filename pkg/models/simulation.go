// Package models defines the domain value types shared across HomeSim:
// scenario ranges, sampled trial scenarios, per-trial results, per-price
// summaries, and the assembled price-sweep table.
package models

import (
	"fmt"
	"math"
)

// ════════════════════════════════════════════════════════════════════
// Range — closed interval for an uncertain quantity
// ════════════════════════════════════════════════════════════════════

// Range is a closed interval [Lo, Hi] from which one value is drawn
// uniformly per trial. Lo == Hi collapses the range to a point.
type Range struct {
	Lo float64 `mapstructure:"lo" yaml:"lo" json:"lo"`
	Hi float64 `mapstructure:"hi" yaml:"hi" json:"hi"`
}

// Point returns a degenerate range collapsed to a single value.
func Point(v float64) Range {
	return Range{Lo: v, Hi: v}
}

// Width returns Hi - Lo.
func (r Range) Width() float64 {
	return r.Hi - r.Lo
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Lo + r.Hi) / 2
}

// Validate returns an error if the bounds are malformed.
func (r Range) Validate() error {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("bounds must be finite, got [%v, %v]", r.Lo, r.Hi)
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("lower bound %v exceeds upper bound %v", r.Lo, r.Hi)
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════
// Scenario — uncertain quantities and one realization of them
// ════════════════════════════════════════════════════════════════════

// ScenarioRanges holds the nine uncertain quantities as sampling ranges.
// All draws are independent; no correlation structure is modeled between,
// e.g., inflation and property growth.
type ScenarioRanges struct {
	BaseIncome     Range `mapstructure:"base_income"      yaml:"base_income"      json:"base_income"`
	BaseExpense    Range `mapstructure:"base_expense"     yaml:"base_expense"     json:"base_expense"`
	InterestRate   Range `mapstructure:"interest_rate"    yaml:"interest_rate"    json:"interest_rate"`
	ClosingCostPct Range `mapstructure:"closing_cost_pct" yaml:"closing_cost_pct" json:"closing_cost_pct"`
	UpfrontExtras  Range `mapstructure:"upfront_extras"   yaml:"upfront_extras"   json:"upfront_extras"`
	ExtraIncome    Range `mapstructure:"extra_income"     yaml:"extra_income"     json:"extra_income"`
	ExtraCosts     Range `mapstructure:"extra_costs"      yaml:"extra_costs"      json:"extra_costs"`
	PropertyGrowth Range `mapstructure:"property_growth"  yaml:"property_growth"  json:"property_growth"`
	Inflation      Range `mapstructure:"inflation"        yaml:"inflation"        json:"inflation"`
}

// Validate checks every range and names the offending field.
func (s ScenarioRanges) Validate() error {
	checks := []struct {
		name string
		r    Range
	}{
		{"base_income", s.BaseIncome},
		{"base_expense", s.BaseExpense},
		{"interest_rate", s.InterestRate},
		{"closing_cost_pct", s.ClosingCostPct},
		{"upfront_extras", s.UpfrontExtras},
		{"extra_income", s.ExtraIncome},
		{"extra_costs", s.ExtraCosts},
		{"property_growth", s.PropertyGrowth},
		{"inflation", s.Inflation},
	}
	for _, c := range checks {
		if err := c.r.Validate(); err != nil {
			return fmt.Errorf("range %s: %w", c.name, err)
		}
	}
	return nil
}

// TrialScenario is one realization of the nine uncertain quantities,
// created fresh per trial and discarded once the trial's outputs are
// folded into the aggregates.
type TrialScenario struct {
	BaseIncome     float64
	BaseExpense    float64
	InterestRate   float64
	ClosingCostPct float64
	UpfrontExtras  float64
	ExtraIncome    float64
	ExtraCosts     float64
	PropertyGrowth float64
	Inflation      float64
}

// ════════════════════════════════════════════════════════════════════
// Trial outputs
// ════════════════════════════════════════════════════════════════════

// CashFlowSeries is an ordered sequence of yearly net cash flows.
// Index 0 is the negative initial outlay, indices 1..years the annual net
// flow after debt servicing, with the final entry augmented by net sale
// proceeds. Length is always years+1.
type CashFlowSeries []float64

// TrialResult holds one trial's outputs. When Skipped is set (affordability
// gate), every other field is zero and the trial contributes nothing to the
// running sums. IRR is meaningful only when IRRValid is true.
type TrialResult struct {
	IRR       float64
	IRRValid  bool
	Favorable bool
	Skipped   bool

	// Per-trial accumulables for later mean computation. Annual figures
	// are the final simulated year's inflation-adjusted values.
	DownPayment     float64
	ClosingCosts    float64
	UpfrontExtras   float64
	NetUpfront      float64
	MortgagePayment float64
	BaseIncome      float64
	BaseExpense     float64
	ExtraIncome     float64
	ExtraCosts      float64
	NetAnnualProfit float64
}

// ════════════════════════════════════════════════════════════════════
// Aggregates
// ════════════════════════════════════════════════════════════════════

// PriceSummary is one row of the sweep table: the Monte Carlo aggregate
// for a single purchase price.
type PriceSummary struct {
	PurchasePrice float64 `json:"purchase_price"`

	Trials    int `json:"trials"`    // total trials attempted, including skipped
	Completed int `json:"completed"` // trials that passed the affordability gate
	Skipped   int `json:"skipped"`   // trials rejected by the affordability gate

	// FavorablePct is always computed over total trials.
	FavorablePct float64 `json:"favorable_pct"`

	// MeanIRR is meaningful only when ValidIRRs > 0. PctAboveTarget is
	// over valid IRRs and degrades to 0 when none converged.
	ValidIRRs      int     `json:"valid_irrs"`
	MeanIRR        float64 `json:"mean_irr"`
	PctAboveTarget float64 `json:"pct_above_target"`

	MeanDownPayment     float64 `json:"mean_down_payment"`
	MeanClosingCosts    float64 `json:"mean_closing_costs"`
	MeanUpfrontExtras   float64 `json:"mean_upfront_extras"`
	MeanNetUpfront      float64 `json:"mean_net_upfront"`
	MeanMortgagePayment float64 `json:"mean_mortgage_payment"`
	MeanBaseExpense     float64 `json:"mean_base_expense"`
	MeanExtraCosts      float64 `json:"mean_extra_costs"`
	MeanBaseIncome      float64 `json:"mean_base_income"`
	MeanExtraIncome     float64 `json:"mean_extra_income"`
	MeanNetAnnualProfit float64 `json:"mean_net_annual_profit"`
}

// HasIRR reports whether at least one trial produced a usable IRR.
func (p PriceSummary) HasIRR() bool {
	return p.ValidIRRs > 0
}

// SweepTable is the ordered result of a full price sweep, one PriceSummary
// per grid price in ascending order.
type SweepTable struct {
	Rows []PriceSummary `json:"rows"`
}

// Series extracts the two headline series for plotting: purchase prices,
// favorable percentage, and percentage above target IRR.
func (t *SweepTable) Series() (prices, favorable, aboveTarget []float64) {
	prices = make([]float64, len(t.Rows))
	favorable = make([]float64, len(t.Rows))
	aboveTarget = make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		prices[i] = r.PurchasePrice
		favorable[i] = r.FavorablePct
		aboveTarget[i] = r.PctAboveTarget
	}
	return prices, favorable, aboveTarget
}
