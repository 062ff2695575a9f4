package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
)

// transferCmd holds the flags for the 'transfer' subcommand.
type transferCmd struct {
	fromID string
	toID   string
	amount float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move stock from one item to another" }
func (*transferCmd) Usage() string {
	return `mct transfer -from <item_id> -to <item_id> -q <amount>

  Moves a quantity between two items. The source clamps at zero while the
  destination receives the full amount.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fromID, "from", "", "Source item id")
	f.StringVar(&c.toID, "to", "", "Destination item id")
	f.Float64Var(&c.amount, "q", 0, "Quantity to move")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fromID == "" || c.toID == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to are required")
		return subcommands.ExitUsageError
	}
	items, err := DecodeItems()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	next := tracker.TransferStock(items, c.fromID, c.toID, tracker.Q(c.amount))
	if err := EncodeItems(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %v from %s to %s\n", c.amount, c.fromID, c.toID)
	return subcommands.ExitSuccess
}
