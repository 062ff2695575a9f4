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

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	speak bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the aggregate metrics of all products" }
func (*portfolioCmd) Usage() string {
	return `mct portfolio [-speak]

  Computes the portfolio totals, the revenue-weighted average margin and the
  top and under performing products. With -speak, a plain-language summary is
  printed instead of the report.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.speak, "speak", false, "Print a plain-language summary")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	products, err := DecodeProducts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	m := tracker.AnalyzePortfolio(products)
	if c.speak {
		fmt.Println(renderer.SummaryText(m))
	} else {
		printMarkdown(renderer.PortfolioMarkdown(m))
	}
	return subcommands.ExitSuccess
}
