package renderer

import (
	"fmt"

	"github.com/maycole/tracker"
)

type savingsRow struct {
	Product       string
	CurrentCost   string
	OptimizedCost string
	Savings       string
	Action        string
}

type savingsView struct {
	Potential string
	Rows      []savingsRow
}

// SavingsMarkdown renders the cost-savings scan result.
func SavingsMarkdown(s tracker.CostSavings) string {
	view := savingsView{Potential: fmt.Sprintf("%.2f", s.PotentialSavings)}
	for _, op := range s.Opportunities {
		view.Rows = append(view.Rows, savingsRow{
			Product:       op.ProductName,
			CurrentCost:   fmt.Sprintf("%.2f", op.CurrentCost),
			OptimizedCost: fmt.Sprintf("%.2f", op.OptimizedCost),
			Savings:       fmt.Sprintf("%.2f", op.Savings),
			Action:        op.Action,
		})
	}
	return renderTemplate("savings", "savings.md", nil, view)
}
