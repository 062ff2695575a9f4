package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
	"github.com/maycole/tracker/date"
	"github.com/maycole/tracker/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	period string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a periodic report of the transaction records" }
func (*reportCmd) Usage() string {
	return `mct report [-p <period>]

  Aggregates the transaction records into daily, weekly or monthly buckets and
  displays one row per bucket, in chronological order. Records with an
  unparseable timestamp are skipped.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "daily", "Report period (daily, weekly, monthly)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ReportMarkdown(period, aggregates))
	return subcommands.ExitSuccess
}
