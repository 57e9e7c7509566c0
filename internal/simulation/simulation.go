// Package simulation implements the Monte Carlo purchase-affordability core:
// scenario sampling, single-trial cash-flow simulation with debt rollover,
// per-price aggregation over repeated trials, and the price-sweep driver.
package simulation

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/seenimoa/homesim/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Engine Configuration
// ════════════════════════════════════════════════════════════════════

// NegativeFlowMode selects what a shortfall year appends to the cash-flow
// series. The rolled-over debt accounting is identical in both modes; only
// the recorded series entry differs.
type NegativeFlowMode string

const (
	// NegativeFlowLiteral appends the actual (negative) net flow computed
	// for the year, before debt accounting absorbs it.
	NegativeFlowLiteral NegativeFlowMode = "literal"

	// NegativeFlowZero appends 0 for a shortfall year, treating the whole
	// shortfall as debt rather than a recorded outflow.
	NegativeFlowZero NegativeFlowMode = "zero"
)

const (
	// debtInterestFactor is the fixed annual interest applied to rollover
	// debt while it remains outstanding.
	debtInterestFactor = 1.10

	// saleClosingCostPct is the fixed fraction of the gross sale price
	// lost to closing costs at sale time.
	saleClosingCostPct = 0.06
)

// Grid is an ascending purchase-price grid: start inclusive, stop exclusive.
type Grid struct {
	Start float64 `mapstructure:"start" yaml:"start" json:"start"`
	Stop  float64 `mapstructure:"stop"  yaml:"stop"  json:"stop"`
	Step  float64 `mapstructure:"step"  yaml:"step"  json:"step"`
}

// Prices expands the grid into its price points.
func (g Grid) Prices() []float64 {
	if g.Step <= 0 || g.Stop <= g.Start {
		return nil
	}
	var prices []float64
	for p := g.Start; p < g.Stop; p += g.Step {
		prices = append(prices, p)
	}
	return prices
}

// Config holds all parameters for a simulation run.
type Config struct {
	Savings        float64 `mapstructure:"savings"          yaml:"savings"          json:"savings"`
	DownPaymentPct float64 `mapstructure:"down_payment_pct" yaml:"down_payment_pct" json:"down_payment_pct"`
	Years          int     `mapstructure:"years"            yaml:"years"            json:"years"`
	TermYears      int     `mapstructure:"term_years"       yaml:"term_years"       json:"term_years"`
	TargetIRR      float64 `mapstructure:"target_irr"       yaml:"target_irr"       json:"target_irr"`
	Trials         int     `mapstructure:"trials"           yaml:"trials"           json:"trials"`

	// Seed drives all randomness. 0 derives a seed from the clock at
	// engine construction; any other value is fully reproducible.
	Seed int64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	// Workers bounds the number of prices simulated concurrently.
	// 0 means one worker per CPU.
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`

	// AffordabilityGate skips trials whose initial outlay exceeds savings.
	// Skipped trials still count toward the favorable-percentage
	// denominator but contribute nothing to the running sums.
	AffordabilityGate bool `mapstructure:"affordability_gate" yaml:"affordability_gate" json:"affordability_gate"`

	// IncludeSkippedInDenominator selects the mean-value denominator:
	// true divides running sums by total trials (skipped included),
	// false by completed trials only.
	IncludeSkippedInDenominator bool `mapstructure:"include_skipped_in_denominator" yaml:"include_skipped_in_denominator" json:"include_skipped_in_denominator"`

	NegativeFlowMode NegativeFlowMode `mapstructure:"negative_flow_mode" yaml:"negative_flow_mode" json:"negative_flow_mode"`

	Ranges models.ScenarioRanges `mapstructure:"ranges" yaml:"ranges" json:"ranges"`
	Grid   Grid                  `mapstructure:"grid"   yaml:"grid"   json:"grid"`
}

// DefaultConfig returns the reference configuration: the slider defaults of
// the interactive tool this engine was extracted from.
func DefaultConfig() Config {
	return Config{
		Savings:        600000,
		DownPaymentPct: 0.20,
		Years:          20,
		TermYears:      30,
		TargetIRR:      0.065,
		Trials:         1000,
		Seed:           0,
		Workers:        0,

		AffordabilityGate:           true,
		IncludeSkippedInDenominator: true,
		NegativeFlowMode:            NegativeFlowLiteral,

		Ranges: models.ScenarioRanges{
			BaseIncome:     models.Range{Lo: 250000, Hi: 350000},
			BaseExpense:    models.Range{Lo: 80000, Hi: 150000},
			InterestRate:   models.Range{Lo: 0.07, Hi: 0.08},
			ClosingCostPct: models.Range{Lo: 0.04, Hi: 0.07},
			UpfrontExtras:  models.Range{Lo: 0, Hi: 50000},
			ExtraIncome:    models.Range{Lo: 0, Hi: 50000},
			ExtraCosts:     models.Range{Lo: 20000, Hi: 80000},
			PropertyGrowth: models.Range{Lo: -0.04, Hi: 0.06},
			Inflation:      models.Range{Lo: 0, Hi: 0.04},
		},
		Grid: Grid{Start: 1000000, Stop: 4100000, Step: 100000},
	}
}

// Validate fails fast on malformed configuration before any trial runs.
func (c Config) Validate() error {
	if err := c.Ranges.Validate(); err != nil {
		return err
	}
	if c.Savings < 0 {
		return fmt.Errorf("savings must be non-negative, got %v", c.Savings)
	}
	if c.DownPaymentPct <= 0 || c.DownPaymentPct > 1 {
		return fmt.Errorf("down_payment_pct must be in (0, 1], got %v", c.DownPaymentPct)
	}
	if c.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", c.Years)
	}
	if c.TermYears < 0 {
		return fmt.Errorf("term_years must be non-negative, got %d", c.TermYears)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if math.IsNaN(c.TargetIRR) || math.IsInf(c.TargetIRR, 0) {
		return fmt.Errorf("target_irr must be finite, got %v", c.TargetIRR)
	}
	switch c.NegativeFlowMode {
	case NegativeFlowLiteral, NegativeFlowZero:
	default:
		return fmt.Errorf("negative_flow_mode must be %q or %q, got %q",
			NegativeFlowLiteral, NegativeFlowZero, c.NegativeFlowMode)
	}
	if c.Grid.Step <= 0 {
		return fmt.Errorf("grid step must be positive, got %v", c.Grid.Step)
	}
	if c.Grid.Stop <= c.Grid.Start {
		return fmt.Errorf("grid stop %v must exceed start %v", c.Grid.Stop, c.Grid.Start)
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════
// Engine
// ════════════════════════════════════════════════════════════════════

// Engine runs Monte Carlo purchase simulations for a fixed configuration.
// An Engine resolves its base seed once at construction, so repeated runs
// of the same Engine produce identical output.
type Engine struct {
	cfg     Config
	seed    int64
	workers int
}

// NewEngine creates an engine, filling zero-value Config fields with
// defaults. The configuration should already have passed Validate.
func NewEngine(cfg Config) *Engine {
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultConfig().Trials
	}
	if cfg.TermYears <= 0 {
		cfg.TermYears = DefaultConfig().TermYears
	}
	if cfg.NegativeFlowMode == "" {
		cfg.NegativeFlowMode = NegativeFlowLiteral
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Engine{cfg: cfg, seed: seed, workers: workers}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
