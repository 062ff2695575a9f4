package renderer

import (
	"fmt"

	"github.com/maycole/tracker"
)

type portfolioView struct {
	TotalSpent      string
	TotalRevenue    string
	TotalProfit     string
	OverallROI      string
	AverageMargin   string
	Profitable      int
	Unprofitable    int
	TopPerformers   []string
	UnderPerformers []string
}

// PortfolioMarkdown renders the aggregate metrics of a whole product range.
func PortfolioMarkdown(m tracker.PortfolioMetrics) string {
	view := portfolioView{
		TotalSpent:      fmt.Sprintf("%.2f", m.TotalSpent),
		TotalRevenue:    fmt.Sprintf("%.2f", m.TotalRevenue),
		TotalProfit:     fmt.Sprintf("%.2f", m.TotalProfit),
		OverallROI:      m.OverallROI.SignedString(),
		AverageMargin:   m.AverageProfitMargin.String(),
		Profitable:      m.ProfitableProducts,
		Unprofitable:    m.UnprofitableProducts,
		TopPerformers:   m.TopPerformers,
		UnderPerformers: m.UnderPerformers,
	}
	return renderTemplate("portfolio", "portfolio.md", nil, view)
}
