package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
)

// consumeCmd holds the flags for the 'consume' subcommand.
type consumeCmd struct {
	itemID string
	amount float64
}

func (*consumeCmd) Name() string     { return "consume" }
func (*consumeCmd) Synopsis() string { return "record stock usage for an item" }
func (*consumeCmd) Usage() string {
	return `mct consume -id <item_id> -q <amount>

  Decreases the item's quantity. Stock never goes below zero: consuming more
  than is held leaves the item at zero.
`
}

func (c *consumeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.itemID, "id", "", "Item id")
	f.Float64Var(&c.amount, "q", 0, "Quantity consumed")
}

func (c *consumeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.itemID == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	items, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	next := tracker.ConsumeStock(items, c.itemID, tracker.Q(c.amount))
	if err := EncodeItems(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Consumed %v of %s\n", c.amount, c.itemID)
	return subcommands.ExitSuccess
}
