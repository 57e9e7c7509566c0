// Package config handles configuration loading for HomeSim.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/seenimoa/homesim/internal/simulation"
)

// Config represents the complete application configuration.
type Config struct {
	Simulation simulation.Config `mapstructure:"simulation" yaml:"simulation"`
	API        APIConfig         `mapstructure:"api"        yaml:"api"`
	Logging    LoggingConfig     `mapstructure:"logging"    yaml:"logging"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	CacheTTL    int      `mapstructure:"cache_ttl"    yaml:"cache_ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.homesim/config.yaml (home directory)
//  3. /etc/homesim/config.yaml (system)
//
// Environment variables override config file values.
// Format: HOMESIM_<SECTION>_<KEY>, e.g., HOMESIM_SIMULATION_TRIALS.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".homesim"))
	v.AddConfigPath("/etc/homesim")

	v.SetEnvPrefix("HOMESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("HOMESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate fails fast on malformed configuration before any simulation runs.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("api: port must be in (0, 65535], got %d", c.API.Port)
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("api: cache_ttl must be non-negative, got %d", c.API.CacheTTL)
	}
	return nil
}

// setDefaults sets sensible defaults for all config values. The simulation
// defaults mirror simulation.DefaultConfig, the reference configuration.
func setDefaults(v *viper.Viper) {
	d := simulation.DefaultConfig()

	v.SetDefault("simulation.savings", d.Savings)
	v.SetDefault("simulation.down_payment_pct", d.DownPaymentPct)
	v.SetDefault("simulation.years", d.Years)
	v.SetDefault("simulation.term_years", d.TermYears)
	v.SetDefault("simulation.target_irr", d.TargetIRR)
	v.SetDefault("simulation.trials", d.Trials)
	v.SetDefault("simulation.seed", d.Seed)
	v.SetDefault("simulation.workers", d.Workers)
	v.SetDefault("simulation.affordability_gate", d.AffordabilityGate)
	v.SetDefault("simulation.include_skipped_in_denominator", d.IncludeSkippedInDenominator)
	v.SetDefault("simulation.negative_flow_mode", string(d.NegativeFlowMode))

	v.SetDefault("simulation.ranges.base_income.lo", d.Ranges.BaseIncome.Lo)
	v.SetDefault("simulation.ranges.base_income.hi", d.Ranges.BaseIncome.Hi)
	v.SetDefault("simulation.ranges.base_expense.lo", d.Ranges.BaseExpense.Lo)
	v.SetDefault("simulation.ranges.base_expense.hi", d.Ranges.BaseExpense.Hi)
	v.SetDefault("simulation.ranges.interest_rate.lo", d.Ranges.InterestRate.Lo)
	v.SetDefault("simulation.ranges.interest_rate.hi", d.Ranges.InterestRate.Hi)
	v.SetDefault("simulation.ranges.closing_cost_pct.lo", d.Ranges.ClosingCostPct.Lo)
	v.SetDefault("simulation.ranges.closing_cost_pct.hi", d.Ranges.ClosingCostPct.Hi)
	v.SetDefault("simulation.ranges.upfront_extras.lo", d.Ranges.UpfrontExtras.Lo)
	v.SetDefault("simulation.ranges.upfront_extras.hi", d.Ranges.UpfrontExtras.Hi)
	v.SetDefault("simulation.ranges.extra_income.lo", d.Ranges.ExtraIncome.Lo)
	v.SetDefault("simulation.ranges.extra_income.hi", d.Ranges.ExtraIncome.Hi)
	v.SetDefault("simulation.ranges.extra_costs.lo", d.Ranges.ExtraCosts.Lo)
	v.SetDefault("simulation.ranges.extra_costs.hi", d.Ranges.ExtraCosts.Hi)
	v.SetDefault("simulation.ranges.property_growth.lo", d.Ranges.PropertyGrowth.Lo)
	v.SetDefault("simulation.ranges.property_growth.hi", d.Ranges.PropertyGrowth.Hi)
	v.SetDefault("simulation.ranges.inflation.lo", d.Ranges.Inflation.Lo)
	v.SetDefault("simulation.ranges.inflation.hi", d.Ranges.Inflation.Hi)

	v.SetDefault("simulation.grid.start", d.Grid.Start)
	v.SetDefault("simulation.grid.stop", d.Grid.Stop)
	v.SetDefault("simulation.grid.step", d.Grid.Step)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.cache_ttl", 300) // 5 minutes

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
