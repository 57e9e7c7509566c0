// Package report renders sweep results for human consumption: an aligned
// text table for the CLI, pure-Go SVG line charts of the two headline
// series, and a self-contained HTML report.
package report

import (
	"fmt"
	"strings"

	"github.com/seenimoa/homesim/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// SVG Chart Generator — Pure Go, Zero Dependencies
// ════════════════════════════════════════════════════════════════════

// ChartConfig holds rendering parameters for SVG charts.
type ChartConfig struct {
	Width        int    // SVG width in pixels (default: 800)
	Height       int    // SVG height in pixels (default: 400)
	MarginTop    int    // top margin (default: 40)
	MarginRight  int    // right margin (default: 40)
	MarginBottom int    // bottom margin (default: 50)
	MarginLeft   int    // left margin (default: 60)
	BgColor      string // background color (default: "#ffffff")
	GridColor    string // grid line color (default: "#e8e8e8")
	TextColor    string // axis label color (default: "#333333")
	LineColor    string // series color (default: "#2563eb")
	FontSize     int    // axis label font size (default: 11)
	Title        string // chart title
	YLabel       string // y-axis label
}

// DefaultChartConfig returns sensible defaults for chart rendering.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:        800,
		Height:       400,
		MarginTop:    40,
		MarginRight:  40,
		MarginBottom: 50,
		MarginLeft:   60,
		BgColor:      "#ffffff",
		GridColor:    "#e8e8e8",
		TextColor:    "#333333",
		LineColor:    "#2563eb",
		FontSize:     11,
	}
}

// plotArea returns the usable drawing area dimensions.
func (c ChartConfig) plotArea() (x, y, w, h int) {
	return c.MarginLeft, c.MarginTop,
		c.Width - c.MarginLeft - c.MarginRight,
		c.Height - c.MarginTop - c.MarginBottom
}

// PercentChart draws one percentage series against purchase price as an
// SVG line chart. The y-axis is fixed to [0, 100] with grid lines every
// 10 points, matching how affordability curves are conventionally read.
func PercentChart(prices, values []float64, cfg ChartConfig) string {
	if len(prices) == 0 || len(prices) != len(values) {
		return emptySVG(cfg, "No data available")
	}

	if cfg.Width == 0 {
		title, ylabel := cfg.Title, cfg.YLabel
		cfg = DefaultChartConfig()
		cfg.Title, cfg.YLabel = title, ylabel
	}

	px, py, pw, ph := cfg.plotArea()

	var sb strings.Builder
	sb.WriteString(svgHeader(cfg))

	// Background
	sb.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`,
		cfg.Width, cfg.Height, cfg.BgColor))

	// Title
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-size="14" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`,
		cfg.Width/2, cfg.TextColor, escapeXML(cfg.Title)))

	// Y-axis grid lines and labels, 0..100 every 10.
	for pct := 0; pct <= 100; pct += 10 {
		y := py + ph - ph*pct/100
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-dasharray="3,3"/>`,
			px, y, px+pw, y, cfg.GridColor))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="%d" fill="%s" text-anchor="end">%d%%</text>`,
			px-5, y+4, cfg.FontSize, cfg.TextColor, pct))
	}

	// X-axis labels: up to 7 evenly spaced prices in compact notation.
	n := len(prices)
	interval := n / 6
	if interval < 1 {
		interval = 1
	}
	for i := 0; i < n; i += interval {
		cx := xCoord(i, n, px, pw)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="%d" fill="%s" text-anchor="middle">%s</text>`,
			cx, py+ph+18, cfg.FontSize, cfg.TextColor, utils.FormatUSDCompact(prices[i])))
	}

	// Series path.
	var pathParts []string
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		cx := xCoord(i, n, px, pw)
		cy := float64(py+ph) - v/100*float64(ph)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		pathParts = append(pathParts, fmt.Sprintf("%s%.1f,%.1f", cmd, cx, cy))
	}
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.Join(pathParts, " "), cfg.LineColor))

	// Y-axis label, rotated.
	if cfg.YLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="14" y="%d" font-size="%d" fill="%s" text-anchor="middle" transform="rotate(-90 14 %d)">%s</text>`,
			py+ph/2, cfg.FontSize, cfg.TextColor, py+ph/2, escapeXML(cfg.YLabel)))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// xCoord maps series index i of n points onto the plot width.
func xCoord(i, n, px, pw int) float64 {
	if n == 1 {
		return float64(px) + float64(pw)/2
	}
	return float64(px) + float64(i)*float64(pw)/float64(n-1)
}

// ════════════════════════════════════════════════════════════════════
// SVG plumbing
// ════════════════════════════════════════════════════════════════════

func svgHeader(cfg ChartConfig) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
}

func emptySVG(cfg ChartConfig, msg string) string {
	if cfg.Width == 0 {
		cfg = DefaultChartConfig()
	}
	return svgHeader(cfg) + fmt.Sprintf(
		`<text x="%d" y="%d" font-size="13" fill="#888" text-anchor="middle">%s</text></svg>`,
		cfg.Width/2, cfg.Height/2, escapeXML(msg))
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
