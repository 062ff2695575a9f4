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

// savingsCmd holds the flags for the 'savings' subcommand.
type savingsCmd struct{}

func (*savingsCmd) Name() string     { return "savings" }
func (*savingsCmd) Synopsis() string { return "scan the products for cost-saving opportunities" }
func (*savingsCmd) Usage() string {
	return `mct savings

  Scans all products for saving opportunities: poor sourcing terms on low-ROI
  products and carrying costs on slow-moving stock.
`
}

func (*savingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *savingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	products, err := DecodeProducts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := tracker.CalculateCostSavings(products)
	printMarkdown(renderer.SavingsMarkdown(s))
	return subcommands.ExitSuccess
}
