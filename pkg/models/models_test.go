package models

import (
	"math"
	"strings"
	"testing"
)

func validRanges() ScenarioRanges {
	return ScenarioRanges{
		BaseIncome:     Range{Lo: 250_000, Hi: 350_000},
		BaseExpense:    Range{Lo: 80_000, Hi: 150_000},
		InterestRate:   Range{Lo: 0.07, Hi: 0.08},
		ClosingCostPct: Range{Lo: 0.04, Hi: 0.07},
		UpfrontExtras:  Range{Lo: 0, Hi: 50_000},
		ExtraIncome:    Range{Lo: 0, Hi: 50_000},
		ExtraCosts:     Range{Lo: 20_000, Hi: 80_000},
		PropertyGrowth: Range{Lo: -0.04, Hi: 0.06},
		Inflation:      Range{Lo: 0, Hi: 0.04},
	}
}

func TestRangeValidate(t *testing.T) {
	cases := []struct {
		name string
		r    Range
		ok   bool
	}{
		{"ordered", Range{Lo: 1, Hi: 2}, true},
		{"point", Range{Lo: 3, Hi: 3}, true},
		{"negative span", Range{Lo: -0.04, Hi: 0.06}, true},
		{"inverted", Range{Lo: 2, Hi: 1}, false},
		{"nan lo", Range{Lo: math.NaN(), Hi: 1}, false},
		{"inf hi", Range{Lo: 0, Hi: math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate(%+v) = %v, want nil", tc.r, err)
			}
			if !tc.ok && err == nil {
				t.Errorf("Validate(%+v) = nil, want error", tc.r)
			}
		})
	}
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Lo: 10, Hi: 30}
	if got := r.Width(); got != 20 {
		t.Errorf("Width() = %v, want 20", got)
	}
	if got := r.Mid(); got != 20 {
		t.Errorf("Mid() = %v, want 20", got)
	}
	p := Point(7)
	if p.Lo != 7 || p.Hi != 7 {
		t.Errorf("Point(7) = %+v, want collapsed range at 7", p)
	}
	if p.Width() != 0 {
		t.Errorf("Point(7).Width() = %v, want 0", p.Width())
	}
}

func TestScenarioRangesValidate(t *testing.T) {
	if err := validRanges().Validate(); err != nil {
		t.Fatalf("valid ranges rejected: %v", err)
	}

	// The error must name the field so a bad config file is debuggable.
	r := validRanges()
	r.Inflation = Range{Lo: 0.04, Hi: 0}
	err := r.Validate()
	if err == nil {
		t.Fatal("inverted inflation range accepted")
	}
	if !strings.Contains(err.Error(), "inflation") {
		t.Errorf("error %q does not name the inflation field", err)
	}

	r = validRanges()
	r.InterestRate = Range{Lo: math.NaN(), Hi: 0.08}
	err = r.Validate()
	if err == nil || !strings.Contains(err.Error(), "interest_rate") {
		t.Errorf("error %v does not name the interest_rate field", err)
	}
}

func TestPriceSummaryHasIRR(t *testing.T) {
	if (PriceSummary{ValidIRRs: 0}).HasIRR() {
		t.Error("HasIRR() = true with no valid IRRs")
	}
	if !(PriceSummary{ValidIRRs: 1}).HasIRR() {
		t.Error("HasIRR() = false with one valid IRR")
	}
}

func TestSweepTableSeries(t *testing.T) {
	table := SweepTable{Rows: []PriceSummary{
		{PurchasePrice: 1_000_000, FavorablePct: 90, PctAboveTarget: 80},
		{PurchasePrice: 1_100_000, FavorablePct: 70, PctAboveTarget: 55},
		{PurchasePrice: 1_200_000, FavorablePct: 40, PctAboveTarget: 20},
	}}

	prices, favorable, aboveTarget := table.Series()
	if len(prices) != 3 || len(favorable) != 3 || len(aboveTarget) != 3 {
		t.Fatalf("series lengths = %d/%d/%d, want 3", len(prices), len(favorable), len(aboveTarget))
	}
	if prices[1] != 1_100_000 {
		t.Errorf("prices[1] = %v, want 1100000", prices[1])
	}
	if favorable[2] != 40 {
		t.Errorf("favorable[2] = %v, want 40", favorable[2])
	}
	if aboveTarget[0] != 80 {
		t.Errorf("aboveTarget[0] = %v, want 80", aboveTarget[0])
	}

	var empty SweepTable
	prices, favorable, aboveTarget = empty.Series()
	if len(prices) != 0 || len(favorable) != 0 || len(aboveTarget) != 0 {
		t.Error("empty table should yield empty series")
	}
}
