package tracker

import "sort"

// PortfolioMetrics aggregates product metrics across a whole product range.
type PortfolioMetrics struct {
	TotalSpent           float64  `json:"totalSpent"`
	TotalRevenue         float64  `json:"totalRevenue"`
	TotalProfit          float64  `json:"totalProfit"`
	OverallROI           Percent  `json:"overallROI"`
	AverageProfitMargin  Percent  `json:"averageProfitMargin"`
	ProfitableProducts   int      `json:"profitableProducts"`
	UnprofitableProducts int      `json:"unprofitableProducts"`
	TopPerformers        []string `json:"topPerformers"`
	UnderPerformers      []string `json:"underPerformers"`
}

const maxPerformers = 5

// AnalyzePortfolio rolls per-product metrics into portfolio totals.
//
// The average profit margin is weighted by revenue, not a simple mean: a
// high-margin trickle must not mask a low-margin flagship. Products with
// roi > 0 count as profitable, everything else (including roi == 0) as
// unprofitable. Top performers are the names with roi > 20 sorted by
// descending ROI; under performers the names with roi < 0 sorted ascending
// (worst first); both capped at five.
func AnalyzePortfolio(products []ProductMetrics) PortfolioMetrics {
	var m PortfolioMetrics

	type analyzed struct {
		name string
		roi  Percent
	}
	results := make([]analyzed, 0, len(products))

	var weightedMargin float64
	for _, p := range products {
		m.TotalSpent += p.TotalSpent
		m.TotalRevenue += p.Revenue
		weightedMargin += float64(ProfitMargin(p.TotalSpent, p.Revenue)) * p.Revenue
		results = append(results, analyzed{name: p.Name, roi: AnalyzeProduct(p).ROI})
	}

	m.TotalProfit = m.TotalRevenue - m.TotalSpent
	m.OverallROI = ReturnOnInvestment(m.TotalSpent, m.TotalRevenue)
	if m.TotalRevenue > 0 {
		m.AverageProfitMargin = Percent(weightedMargin / m.TotalRevenue)
	}

	for _, r := range results {
		if r.roi > 0 {
			m.ProfitableProducts++
		} else {
			m.UnprofitableProducts++
		}
	}

	top := make([]analyzed, 0, len(results))
	under := make([]analyzed, 0, len(results))
	for _, r := range results {
		if r.roi > 20 {
			top = append(top, r)
		}
		if r.roi < 0 {
			under = append(under, r)
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].roi > top[j].roi })
	sort.SliceStable(under, func(i, j int) bool { return under[i].roi < under[j].roi })

	for _, r := range top[:min(len(top), maxPerformers)] {
		m.TopPerformers = append(m.TopPerformers, r.name)
	}
	for _, r := range under[:min(len(under), maxPerformers)] {
		m.UnderPerformers = append(m.UnderPerformers, r.name)
	}
	return m
}
