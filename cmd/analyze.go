package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
	"github.com/maycole/tracker/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	name string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "display the business metrics of a single product" }
func (*analyzeCmd) Usage() string {
	return `mct analyze -name <product>

  Computes ROI, profit margin, per-unit figures, inventory turnover, the
  overall business impact and up to four recommendations for one product.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (case-insensitive)")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	products, err := DecodeProducts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, p := range products {
		if strings.EqualFold(p.Name, c.name) {
			printMarkdown(renderer.AnalysisMarkdown(p, tracker.AnalyzeProduct(p)))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintf(os.Stderr, "Error: no product named %q in %s\n", c.name, *productsFile)
	return subcommands.ExitFailure
}
