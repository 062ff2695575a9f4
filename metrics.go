package tracker

// ProductMetrics is the per-product financial input to the metrics engine.
// All numeric fields must be finite; the engine works in floats by design,
// the figures it derives are indicators, not accounting entries.
type ProductMetrics struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TotalSpent      float64 `json:"totalSpent"`
	Revenue         float64 `json:"revenue"`
	Quantity        float64 `json:"quantity"`
	CostPerUnit     float64 `json:"costPerUnit"`
	DaysInInventory float64 `json:"daysInInventory"`
}

// Impact classifies whether a product is helping or hurting the business.
type Impact int

const (
	Neutral Impact = iota
	Helping
	Hurting
)

func (i Impact) String() string {
	switch i {
	case Helping:
		return "helping"
	case Hurting:
		return "hurting"
	default:
		return "neutral"
	}
}

// MarshalJSON writes the impact as its lowercase name.
func (i Impact) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// CalculationResult holds the metrics derived for a single product.
type CalculationResult struct {
	ROI               Percent  `json:"roi"`
	ProfitMargin      Percent  `json:"profitMargin"`
	RevenuePerUnit    float64  `json:"revenuePerUnit"`
	ProfitPerUnit     float64  `json:"profitPerUnit"`
	InventoryTurnover float64  `json:"inventoryTurnover"`
	BusinessImpact    Impact   `json:"businessImpact"`
	Recommendations   []string `json:"recommendations"`
}

// ReturnOnInvestment computes (revenue-spent)/spent*100, zero when nothing was spent.
func ReturnOnInvestment(totalSpent, revenue float64) Percent {
	if totalSpent == 0 {
		return 0
	}
	return Percent((revenue - totalSpent) / totalSpent * 100)
}

// ProfitMargin computes (revenue-spent)/revenue*100, zero when there is no revenue.
func ProfitMargin(totalSpent, revenue float64) Percent {
	if revenue == 0 {
		return 0
	}
	return Percent((revenue - totalSpent) / revenue * 100)
}

// AssessBusinessImpact is the central three-factor weighted vote: each of ROI,
// margin and turnover contributes 1 point above its strong threshold, half a
// point above its weak one. Total >= 2 helps, <= 1 hurts, in between is
// neutral. The exact thresholds are load-bearing for output compatibility.
func AssessBusinessImpact(roi, margin Percent, turnover float64) Impact {
	score := vote(float64(roi), 20, 0) + vote(float64(margin), 20, 0) + vote(turnover, 4, 2)
	switch {
	case score >= 2:
		return Helping
	case score <= 1:
		return Hurting
	default:
		return Neutral
	}
}

func vote(v, strong, weak float64) float64 {
	switch {
	case v >= strong:
		return 1
	case v >= weak:
		return 0.5
	default:
		return 0
	}
}

// recommendation rules, evaluated strictly in declaration order. The final
// list is truncated to the first four matches, NOT re-ranked by severity:
// callers rely on the historical ordering.
type recommendationRule struct {
	match func(p ProductMetrics, c CalculationResult) bool
	notes []string
}

var recommendationRules = []recommendationRule{
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.ROI < 0 },
		notes: []string{
			"URGENT: Product is losing money. Consider discontinuing or repricing.",
			"Review supplier costs and negotiate better pricing.",
		},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.ROI >= 0 && c.ROI < 10 },
		notes: []string{"Low ROI detected. Consider price increases or cost reduction."},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.ROI > 50 },
		notes: []string{
			"Excellent ROI! Consider increasing inventory levels.",
			"This product is a star performer - maintain current strategy.",
		},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.ProfitMargin < 10 },
		notes: []string{"Low profit margin. Evaluate pricing strategy and costs."},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.ProfitMargin > 40 },
		notes: []string{"High profit margin - excellent pricing strategy."},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.InventoryTurnover < 2 },
		notes: []string{
			"Slow inventory turnover. Consider promotions or bundling.",
			"Review demand forecasting and reduce order quantities.",
		},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return c.InventoryTurnover > 12 },
		notes: []string{
			"Very fast turnover. Consider increasing stock levels.",
			"High demand product - ensure adequate supply chain.",
		},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return p.CostPerUnit > 50 },
		notes: []string{
			"High-value item. Implement strict quality controls.",
			"Consider volume discounts from suppliers.",
		},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return p.Quantity < 10 },
		notes: []string{"Low stock levels. Monitor for stockouts."},
	},
	{
		match: func(p ProductMetrics, c CalculationResult) bool { return p.Quantity > 1000 },
		notes: []string{"High inventory levels. Monitor for obsolescence."},
	},
}

const maxRecommendations = 4

// GenerateRecommendations evaluates the rule list against a product and its
// computed metrics and returns at most four notes in rule-declaration order.
func GenerateRecommendations(product ProductMetrics, calc CalculationResult) []string {
	var notes []string
	for _, rule := range recommendationRules {
		if rule.match(product, calc) {
			notes = append(notes, rule.notes...)
		}
	}
	if len(notes) > maxRecommendations {
		notes = notes[:maxRecommendations]
	}
	return notes
}

// AnalyzeProduct derives the full set of metrics for one product.
func AnalyzeProduct(product ProductMetrics) CalculationResult {
	roi := ReturnOnInvestment(product.TotalSpent, product.Revenue)
	margin := ProfitMargin(product.TotalSpent, product.Revenue)

	var revenuePerUnit float64
	if product.Quantity > 0 {
		revenuePerUnit = product.Revenue / product.Quantity
	}
	profitPerUnit := revenuePerUnit - product.CostPerUnit

	var turnover float64
	if product.DaysInInventory > 0 {
		turnover = 365 / product.DaysInInventory
	}

	result := CalculationResult{
		ROI:               roi,
		ProfitMargin:      margin,
		RevenuePerUnit:    revenuePerUnit,
		ProfitPerUnit:     profitPerUnit,
		InventoryTurnover: turnover,
		BusinessImpact:    AssessBusinessImpact(roi, margin, turnover),
	}
	result.Recommendations = GenerateRecommendations(product, result)
	return result
}
