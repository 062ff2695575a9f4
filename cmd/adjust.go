package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
)

// adjustCmd holds the flags for the 'adjust' subcommand.
type adjustCmd struct {
	itemID string
	delta  float64
	reason string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "apply a signed stock correction to an item" }
func (*adjustCmd) Usage() string {
	return `mct adjust -id <item_id> -delta <amount> [-reason <text>]

  Applies a signed delta to the item's quantity, for corrections after a
  physical count. The result is clamped at zero; a zero delta is a no-op.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.itemID, "id", "", "Item id")
	f.Float64Var(&c.delta, "delta", 0, "Signed quantity delta")
	f.StringVar(&c.reason, "reason", "", "Reason for the correction (optional)")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.itemID == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	items, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	adjustment := tracker.InventoryAdjustment{
		ItemID:    c.itemID,
		Delta:     tracker.Q(c.delta),
		Reason:    c.reason,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	next := tracker.AdjustInventory(items, adjustment)
	if err := EncodeItems(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Adjusted %s by %+v\n", c.itemID, c.delta)
	return subcommands.ExitSuccess
}
