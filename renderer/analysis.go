package renderer

import (
	"fmt"

	"github.com/maycole/tracker"
)

type analysisView struct {
	Name            string
	Impact          string
	ROI             string
	ProfitMargin    string
	RevenuePerUnit  string
	ProfitPerUnit   string
	Turnover        string
	Recommendations []string
}

// AnalysisMarkdown renders the metrics derived for a single product.
func AnalysisMarkdown(product tracker.ProductMetrics, calc tracker.CalculationResult) string {
	view := analysisView{
		Name:            product.Name,
		Impact:          calc.BusinessImpact.String(),
		ROI:             calc.ROI.SignedString(),
		ProfitMargin:    calc.ProfitMargin.SignedString(),
		RevenuePerUnit:  fmt.Sprintf("%.2f", calc.RevenuePerUnit),
		ProfitPerUnit:   fmt.Sprintf("%.2f", calc.ProfitPerUnit),
		Turnover:        fmt.Sprintf("%.1f / year", calc.InventoryTurnover),
		Recommendations: calc.Recommendations,
	}
	partials := map[string]string{
		"recommendations": "recommendations.md",
	}
	return renderTemplate("analysis", "analysis.md", partials, view)
}
