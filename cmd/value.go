package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
	"github.com/maycole/tracker/renderer"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	stats    bool
	lowStock float64
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the total inventory value" }
func (*valueCmd) Usage() string {
	return `mct value [-stats] [-low <threshold>]

  Values the inventory against the price document. Items with no known price
  value at zero. With -stats, a full health snapshot is displayed; with -low,
  items at or below the threshold are listed.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.stats, "stats", false, "Display the full health snapshot")
	f.Float64Var(&c.lowStock, "low", -1, "List items at or below this quantity")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.stats {
		threshold := tracker.Q(0)
		if c.lowStock >= 0 {
			threshold = tracker.Q(c.lowStock)
		}
		stats := tracker.ComputeInventoryStats(items, prices.Lookup(), threshold)
		stats.TotalValue = withCurrency(stats.TotalValue)
		stats.LowStockValue = withCurrency(stats.LowStockValue)
		for loc, v := range stats.LocationValues {
			stats.LocationValues[loc] = withCurrency(v)
		}
		printMarkdown(renderer.StatsMarkdown(stats))
	} else {
		total := tracker.InventoryValue(items, prices.Lookup())
		fmt.Printf("Total inventory value: %s\n", withCurrency(total))
	}

	if c.lowStock >= 0 {
		low := tracker.LowStock(items, tracker.Q(c.lowStock))
		for _, it := range low {
			fmt.Printf("LOW %s (%s): %s %s\n", it.Name, it.ID, it.Quantity, it.Unit)
		}
	}
	return subcommands.ExitSuccess
}
