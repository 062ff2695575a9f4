package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
)

// receiveCmd holds the flags for the 'receive' subcommand.
type receiveCmd struct {
	itemID   string
	amount   float64
	location string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "record a stock delivery for an item" }
func (*receiveCmd) Usage() string {
	return `mct receive -id <item_id> -q <amount> [-loc <location>]

  Increases the item's quantity. A non-positive amount is a no-op. When a
  location is given it becomes the item's new location.
`
}

func (c *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.itemID, "id", "", "Item id")
	f.Float64Var(&c.amount, "q", 0, "Quantity received")
	f.StringVar(&c.location, "loc", "", "Storage location (optional)")
}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.itemID == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	items, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	next := tracker.ReceiveStock(items, c.itemID, tracker.Q(c.amount), c.location)
	if err := EncodeItems(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Received %v of %s\n", c.amount, c.itemID)
	return subcommands.ExitSuccess
}
