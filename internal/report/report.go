package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/seenimoa/homesim/internal/simulation"
	"github.com/seenimoa/homesim/pkg/models"
	"github.com/seenimoa/homesim/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// HTML Report — parameter summary, sweep table, headline charts
// ════════════════════════════════════════════════════════════════════

// ReportConfig controls report generation behaviour.
type ReportConfig struct {
	Title    string      // custom report title (optional)
	Author   string      // author name (optional)
	ChartCfg ChartConfig // chart rendering config
}

// DefaultReportConfig returns sensible defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Title:    "Purchase Affordability Analysis",
		Author:   "HomeSim",
		ChartCfg: DefaultChartConfig(),
	}
}

// paramRow is one line of the parameter summary.
type paramRow struct {
	Label string
	Value string
}

// rowData is one rendered table row.
type rowData struct {
	Cells []string
}

// ReportData is the template model passed to the HTML template.
type ReportData struct {
	Title       string
	Author      string
	GeneratedAt string

	Params  []paramRow
	Headers []string
	Rows    []rowData

	FavorableChart   template.HTML
	AboveTargetChart template.HTML
}

// GenerateHTML renders the sweep table and its two headline charts as a
// self-contained HTML document.
func GenerateHTML(table *models.SweepTable, simCfg simulation.Config, cfg ReportConfig) (string, error) {
	if cfg.Title == "" {
		cfg = DefaultReportConfig()
	}

	data := buildReportData(table, simCfg, cfg)

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

func buildReportData(table *models.SweepTable, simCfg simulation.Config, cfg ReportConfig) ReportData {
	prices, favorable, aboveTarget := table.Series()

	favCfg := cfg.ChartCfg
	favCfg.Title = "Percentage Affording Upfront & Ongoing Costs"
	favCfg.YLabel = "Favorable (%)"

	tgtCfg := cfg.ChartCfg
	tgtCfg.Title = fmt.Sprintf("Percentage Above Target IRR (%s)", utils.FormatRate(simCfg.TargetIRR))
	tgtCfg.YLabel = "Above Target (%)"
	tgtCfg.LineColor = "#ea580c"

	cols := sweepColumns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}
	rows := make([]rowData, len(table.Rows))
	for ri, row := range table.Rows {
		cells := make([]string, len(cols))
		for ci, c := range cols {
			cells[ci] = c.cell(row)
		}
		rows[ri] = rowData{Cells: cells}
	}

	return ReportData{
		Title:       cfg.Title,
		Author:      cfg.Author,
		GeneratedAt: time.Now().Format("2006-01-02 15:04 MST"),

		Params:  buildParamRows(simCfg),
		Headers: headers,
		Rows:    rows,

		FavorableChart:   template.HTML(PercentChart(prices, favorable, favCfg)),
		AboveTargetChart: template.HTML(PercentChart(prices, aboveTarget, tgtCfg)),
	}
}

func buildParamRows(c simulation.Config) []paramRow {
	rangeStr := func(r models.Range, format func(float64) string) string {
		if r.Lo == r.Hi {
			return format(r.Lo)
		}
		return fmt.Sprintf("%s – %s", format(r.Lo), format(r.Hi))
	}

	return []paramRow{
		{"Savings", utils.FormatUSD(c.Savings)},
		{"Down payment", utils.FormatRate(c.DownPaymentPct)},
		{"Horizon", fmt.Sprintf("%d years", c.Years)},
		{"Mortgage term", fmt.Sprintf("%d years", c.TermYears)},
		{"Target IRR", utils.FormatRate(c.TargetIRR)},
		{"Trials per price", fmt.Sprintf("%d", c.Trials)},
		{"Interest rate", rangeStr(c.Ranges.InterestRate, utils.FormatRate)},
		{"Closing costs", rangeStr(c.Ranges.ClosingCostPct, utils.FormatRate)},
		{"Upfront extras", rangeStr(c.Ranges.UpfrontExtras, utils.FormatUSDWhole)},
		{"Base income", rangeStr(c.Ranges.BaseIncome, utils.FormatUSDWhole)},
		{"Base expense", rangeStr(c.Ranges.BaseExpense, utils.FormatUSDWhole)},
		{"Extra income", rangeStr(c.Ranges.ExtraIncome, utils.FormatUSDWhole)},
		{"Extra costs", rangeStr(c.Ranges.ExtraCosts, utils.FormatUSDWhole)},
		{"Property growth", rangeStr(c.Ranges.PropertyGrowth, utils.FormatRate)},
		{"Inflation", rangeStr(c.Ranges.Inflation, utils.FormatRate)},
	}
}
