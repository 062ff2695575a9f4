package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
	"github.com/maycole/tracker/date"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	period string
	what   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a report or the portfolio to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `mct export [-what report|portfolio] [-f csv|xlsx] [-p <period>] -o <file>

  Exports the periodic report (csv or xlsx) or the portfolio summary (xlsx
  only) to a file.

Usage Examples:
# Export the weekly report as a spreadsheet.
$ mct export -f xlsx -p weekly -o report.xlsx
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "report", "What to export (report, portfolio)")
	f.StringVar(&c.format, "f", "csv", "Output format (csv, xlsx)")
	f.StringVar(&c.period, "p", "daily", "Report period (daily, weekly, monthly)")
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create output file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch c.what {
	case "report":
		period, err := date.ParsePeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		records, err := DecodeRecords()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		aggregates := tracker.AggregateByPeriod(records, period)

		switch c.format {
		case "csv":
			err = tracker.ExportReportCSV(out, aggregates)
		case "xlsx":
			err = tracker.ExportReportXLSX(out, aggregates)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
			return subcommands.ExitUsageError
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

	case "portfolio":
		if c.format != "xlsx" {
			fmt.Fprintln(os.Stderr, "Error: the portfolio export only supports -f xlsx")
			return subcommands.ExitUsageError
		}
		products, err := DecodeProducts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := tracker.ExportPortfolioXLSX(out, tracker.AnalyzePortfolio(products)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export %q\n", c.what)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Exported %s to %s\n", c.what, c.output)
	return subcommands.ExitSuccess
}
