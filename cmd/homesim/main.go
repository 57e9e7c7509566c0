// HomeSim — Monte Carlo purchase affordability simulator
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/homesim/api"
	"github.com/seenimoa/homesim/internal/config"
	"github.com/seenimoa/homesim/internal/mortgage"
	"github.com/seenimoa/homesim/internal/report"
	"github.com/seenimoa/homesim/internal/simulation"
	"github.com/seenimoa/homesim/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homesim",
	Short: "HomeSim — Monte Carlo purchase affordability simulator",
	Long: `HomeSim sweeps a grid of purchase prices and, for each price, runs
Monte Carlo trials over uncertain incomes, expenses, rates, and growth
to estimate how often the purchase is affordable and what IRR the held
property earns at sale.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
			cfg.Simulation.Seed = seed
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed override (nonzero seeds are reproducible)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("HomeSim %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Sweep Command ---

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the full price sweep and print the results table",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := simulation.NewEngine(cfg.Simulation)
		table, err := engine.Sweep(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(table)
		}

		fmt.Println(report.RenderText(table))
		return nil
	},
}

func init() {
	sweepCmd.Flags().Bool("json", false, "emit the sweep table as JSON")
}

// --- Simulate Command ---

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run Monte Carlo trials for a single purchase price",
	RunE: func(cmd *cobra.Command, args []string) error {
		price, _ := cmd.Flags().GetFloat64("price")
		if price <= 0 {
			return fmt.Errorf("--price must be positive, got %v", price)
		}

		engine := simulation.NewEngine(cfg.Simulation)
		row := engine.SimulatePrice(price)

		fmt.Printf("Purchase price:    %s\n", utils.FormatUSD(row.PurchasePrice))
		fmt.Printf("Trials:            %d (completed %d, skipped %d)\n",
			row.Trials, row.Completed, row.Skipped)
		fmt.Printf("Favorable:         %s\n", utils.FormatPct(row.FavorablePct))
		if row.HasIRR() {
			fmt.Printf("Mean IRR:          %s (%d valid)\n", utils.FormatRate(row.MeanIRR), row.ValidIRRs)
			fmt.Printf("Above target IRR:  %s\n", utils.FormatPct(row.PctAboveTarget))
		} else {
			fmt.Println("Mean IRR:          — (no trial produced a valid IRR)")
		}
		fmt.Printf("Mean net upfront:  %s\n", utils.FormatUSD(row.MeanNetUpfront))
		fmt.Printf("Mean mortgage/yr:  %s\n", utils.FormatUSD(row.MeanMortgagePayment))
		fmt.Printf("Mean profit/yr:    %s\n", utils.FormatUSD(row.MeanNetAnnualProfit))

		if withSchedule, _ := cmd.Flags().GetBool("schedule"); withSchedule {
			printSchedule(price)
		}
		return nil
	},
}

// printSchedule prints the amortization schedule at the midpoint of the
// configured interest-rate range, one row per year of the loan term.
func printSchedule(price float64) {
	sim := cfg.Simulation
	principal := price * (1 - sim.DownPaymentPct)
	rate := sim.Ranges.InterestRate.Mid()
	rows := mortgage.Schedule(principal, rate, sim.TermYears)

	fmt.Printf("\nAmortization schedule (principal %s at %s, %d years):\n",
		utils.FormatUSD(principal), utils.FormatRate(rate), sim.TermYears)
	fmt.Printf("%6s %18s %18s %18s\n", "Year", "Interest", "Principal", "Balance")
	var yearInterest, yearPrincipal float64
	for _, r := range rows {
		yearInterest += r.Interest
		yearPrincipal += r.Principal
		if r.Month%12 == 0 {
			fmt.Printf("%6d %18s %18s %18s\n", r.Month/12,
				utils.FormatUSD(yearInterest),
				utils.FormatUSD(yearPrincipal),
				utils.FormatUSD(r.Balance))
			yearInterest, yearPrincipal = 0, 0
		}
	}
}

func init() {
	simulateCmd.Flags().Float64("price", 0, "purchase price to simulate (required)")
	simulateCmd.Flags().Bool("schedule", false, "print the amortization schedule at the mid interest rate")
	_ = simulateCmd.MarkFlagRequired("price")
}

// --- Report Command ---

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the sweep and write an HTML report",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		engine := simulation.NewEngine(cfg.Simulation)
		table, err := engine.Sweep(cmd.Context())
		if err != nil {
			return err
		}

		html, err := report.GenerateHTML(table, cfg.Simulation, report.DefaultReportConfig())
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Printf("Report written to %s (%d prices, %d trials each)\n",
			out, len(table.Rows), cfg.Simulation.Trials)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "homesim-report.html", "output HTML file path")
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("Starting HomeSim API server on %s\n", addr)
		return api.NewServer(cfg).ListenAndServe(addr)
	},
}
