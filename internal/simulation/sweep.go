package simulation

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/homesim/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Price Sweep Driver
// ════════════════════════════════════════════════════════════════════

// Sweep runs the aggregator once per grid price and assembles the table in
// ascending price order. Prices are independent, so they run concurrently
// under a bounded errgroup; each price gets its own RNG seeded from the
// engine's base seed and the price index, making the output bit-identical
// regardless of worker count or scheduling.
func (e *Engine) Sweep(ctx context.Context) (*models.SweepTable, error) {
	prices := e.cfg.Grid.Prices()
	if len(prices) == 0 {
		return nil, fmt.Errorf("price grid [%v, %v) step %v is empty",
			e.cfg.Grid.Start, e.cfg.Grid.Stop, e.cfg.Grid.Step)
	}

	rows := make([]models.PriceSummary, len(prices))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, price := range prices {
		i, price := i, price
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(e.seed + int64(i)))
			rows[i] = e.RunPrice(price, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.SweepTable{Rows: rows}, nil
}
