package renderer

import (
	"fmt"

	"github.com/maycole/tracker"
	"github.com/maycole/tracker/date"
)

// reportRow is the preformatted view of one report aggregate.
type reportRow struct {
	Period string
	Items  string
	Value  string
}

type reportView struct {
	Title string
	Rows  []reportRow
}

// ReportMarkdown renders a period report as a markdown table, one row per
// bucket. Buckets without a monetary value show a dash.
func ReportMarkdown(period date.Period, aggregates []tracker.ReportAggregate) string {
	view := reportView{Title: fmt.Sprintf("Inventory Report (%s)", period)}
	for _, agg := range aggregates {
		value := "-"
		if agg.HasValue {
			value = fmt.Sprintf("%.2f", agg.TotalValue.Float())
		}
		view.Rows = append(view.Rows, reportRow{
			Period: agg.Period,
			Items:  agg.TotalItems.String(),
			Value:  value,
		})
	}
	return renderTemplate("report", "report.md", nil, view)
}
