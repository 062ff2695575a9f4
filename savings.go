package tracker

// SavingsOpportunity is one heuristic cost-reduction proposal for a product.
type SavingsOpportunity struct {
	ProductName   string  `json:"productName"`
	CurrentCost   float64 `json:"currentCost"`
	OptimizedCost float64 `json:"optimizedCost"`
	Savings       float64 `json:"savings"`
	Action        string  `json:"action"`
}

// CostSavings is the result of the savings scan over a product range.
type CostSavings struct {
	PotentialSavings float64              `json:"potentialSavings"`
	Opportunities    []SavingsOpportunity `json:"savingsOpportunities"`
}

const (
	sourcingReduction = 0.15 // assumed reduction through better sourcing
	excessInventory   = 0.30 // assumed excess share of slow-moving stock
	carryingCostRate  = 0.25 // annual carrying cost on excess inventory
	maxOpportunities  = 10
)

// CalculateCostSavings scans products for saving opportunities on top of the
// metrics engine: a product with roi < 10 gets a better-sourcing proposal, a
// product with turnover < 2 gets an excess-inventory carrying-cost proposal.
//
// PotentialSavings sums every opportunity found; the opportunity list itself
// is capped at the first ten in scan order (not re-ranked by size), matching
// the historical output.
func CalculateCostSavings(products []ProductMetrics) CostSavings {
	var result CostSavings

	for _, product := range products {
		analysis := AnalyzeProduct(product)

		if analysis.ROI < 10 {
			savings := product.TotalSpent * sourcingReduction
			result.PotentialSavings += savings
			result.Opportunities = append(result.Opportunities, SavingsOpportunity{
				ProductName:   product.Name,
				CurrentCost:   product.TotalSpent,
				OptimizedCost: product.TotalSpent - savings,
				Savings:       savings,
				Action:        "Negotiate better supplier pricing or find alternative sources",
			})
		}

		if analysis.InventoryTurnover < 2 {
			savings := product.TotalSpent * excessInventory * carryingCostRate
			result.PotentialSavings += savings
			result.Opportunities = append(result.Opportunities, SavingsOpportunity{
				ProductName:   product.Name,
				CurrentCost:   product.TotalSpent,
				OptimizedCost: product.TotalSpent - savings,
				Savings:       savings,
				Action:        "Reduce inventory levels and optimize reorder points",
			})
		}
	}

	if len(result.Opportunities) > maxOpportunities {
		result.Opportunities = result.Opportunities[:maxOpportunities]
	}
	return result
}
