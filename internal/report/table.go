package report

import (
	"fmt"
	"strings"

	"github.com/seenimoa/homesim/pkg/models"
	"github.com/seenimoa/homesim/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Text Table — CLI rendering of the sweep table
// ════════════════════════════════════════════════════════════════════

// tableColumn pairs a header with its cell extractor.
type tableColumn struct {
	header string
	cell   func(models.PriceSummary) string
}

func sweepColumns() []tableColumn {
	return []tableColumn{
		{"Price", func(r models.PriceSummary) string { return utils.FormatUSDCompact(r.PurchasePrice) }},
		{"Favorable", func(r models.PriceSummary) string { return utils.FormatPct(r.FavorablePct) }},
		{"Mean IRR", func(r models.PriceSummary) string {
			if !r.HasIRR() {
				return "—"
			}
			return utils.FormatRate(r.MeanIRR)
		}},
		{"> Target", func(r models.PriceSummary) string {
			if !r.HasIRR() {
				return "—"
			}
			return utils.FormatPct(r.PctAboveTarget)
		}},
		{"Down Payment", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanDownPayment) }},
		{"Closing", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanClosingCosts) }},
		{"Upfront Extras", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanUpfrontExtras) }},
		{"Net Upfront", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanNetUpfront) }},
		{"Mortgage/yr", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanMortgagePayment) }},
		{"Net Profit/yr", func(r models.PriceSummary) string { return utils.FormatUSDWhole(r.MeanNetAnnualProfit) }},
	}
}

// RenderText renders the sweep table as an aligned plain-text table.
func RenderText(table *models.SweepTable) string {
	cols := sweepColumns()

	// Measure column widths from headers and every cell.
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c.header)
	}
	cells := make([][]string, len(table.Rows))
	for ri, row := range table.Rows {
		cells[ri] = make([]string, len(cols))
		for ci, c := range cols {
			s := c.cell(row)
			cells[ri][ci] = s
			if w := len([]rune(s)); w > widths[ci] {
				widths[ci] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(vals []string) {
		for i, v := range vals {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%*s", widths[i], v))
		}
		sb.WriteString("\n")
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	writeRow(headers)

	ruleLen := 0
	for _, w := range widths {
		ruleLen += w
	}
	ruleLen += 2 * (len(widths) - 1)
	sb.WriteString(strings.Repeat("-", ruleLen))
	sb.WriteString("\n")

	for _, row := range cells {
		writeRow(row)
	}
	return sb.String()
}
