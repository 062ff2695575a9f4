package renderer

import (
	"fmt"
	"strings"

	"github.com/maycole/tracker"
)

// SummaryText produces the plain-language summary of a portfolio, suitable
// for a text-to-speech engine or a one-line status display. No markdown.
func SummaryText(m tracker.PortfolioMetrics) string {
	var b strings.Builder

	total := m.ProfitableProducts + m.UnprofitableProducts
	fmt.Fprintf(&b, "Your portfolio of %d products ", total)
	switch {
	case m.TotalProfit > 0:
		fmt.Fprintf(&b, "made a profit of %.2f", m.TotalProfit)
	case m.TotalProfit < 0:
		fmt.Fprintf(&b, "lost %.2f", -m.TotalProfit)
	default:
		b.WriteString("broke even")
	}
	fmt.Fprintf(&b, ", an overall return of %.1f percent.", float64(m.OverallROI))

	if total > 0 {
		fmt.Fprintf(&b, " %d products are profitable and %d are not.", m.ProfitableProducts, m.UnprofitableProducts)
	}
	if len(m.TopPerformers) > 0 {
		fmt.Fprintf(&b, " Best performer: %s.", m.TopPerformers[0])
	}
	if len(m.UnderPerformers) > 0 {
		fmt.Fprintf(&b, " Needs attention: %s.", m.UnderPerformers[0])
	}
	return b.String()
}
