package tracker

import "testing"

func TestAnalyzePortfolioWeightedMargin(t *testing.T) {
	// revenue 100 at 50% margin and revenue 300 at 10% margin:
	// weighted average is (50*100 + 10*300)/400 = 20, not the simple mean 30.
	products := []ProductMetrics{
		{Name: "A", TotalSpent: 50, Revenue: 100},
		{Name: "B", TotalSpent: 270, Revenue: 300},
	}
	got := AnalyzePortfolio(products)
	if !got.AverageProfitMargin.Equal(20) {
		t.Errorf("AverageProfitMargin = %v, want 20", got.AverageProfitMargin)
	}
}

func TestAnalyzePortfolioTotals(t *testing.T) {
	products := []ProductMetrics{
		{Name: "A", TotalSpent: 100, Revenue: 150},
		{Name: "B", TotalSpent: 200, Revenue: 150},
		{Name: "C", TotalSpent: 0, Revenue: 0},
	}
	got := AnalyzePortfolio(products)

	if got.TotalSpent != 300 || got.TotalRevenue != 300 {
		t.Errorf("totals = %v spent / %v revenue, want 300/300", got.TotalSpent, got.TotalRevenue)
	}
	if got.TotalProfit != 0 {
		t.Errorf("TotalProfit = %v, want 0", got.TotalProfit)
	}
	if !got.OverallROI.Equal(0) {
		t.Errorf("OverallROI = %v, want 0", got.OverallROI)
	}
	// counts sum to the product count; roi == 0 counts as unprofitable
	if got.ProfitableProducts != 1 || got.UnprofitableProducts != 2 {
		t.Errorf("counts = %d/%d, want 1 profitable, 2 unprofitable", got.ProfitableProducts, got.UnprofitableProducts)
	}
}

func TestAnalyzePortfolioPerformers(t *testing.T) {
	products := []ProductMetrics{
		{Name: "meh", TotalSpent: 100, Revenue: 110},    // roi 10, neither list
		{Name: "good", TotalSpent: 100, Revenue: 130},   // roi 30
		{Name: "great", TotalSpent: 100, Revenue: 200},  // roi 100
		{Name: "bad", TotalSpent: 100, Revenue: 90},     // roi -10
		{Name: "awful", TotalSpent: 100, Revenue: 20},   // roi -80
		{Name: "border", TotalSpent: 100, Revenue: 120}, // roi exactly 20, excluded
	}
	got := AnalyzePortfolio(products)

	wantTop := []string{"great", "good"}
	if len(got.TopPerformers) != len(wantTop) {
		t.Fatalf("TopPerformers = %v, want %v", got.TopPerformers, wantTop)
	}
	for i := range wantTop {
		if got.TopPerformers[i] != wantTop[i] {
			t.Errorf("TopPerformers[%d] = %q, want %q", i, got.TopPerformers[i], wantTop[i])
		}
	}

	wantUnder := []string{"awful", "bad"} // most negative first
	for i := range wantUnder {
		if got.UnderPerformers[i] != wantUnder[i] {
			t.Errorf("UnderPerformers[%d] = %q, want %q", i, got.UnderPerformers[i], wantUnder[i])
		}
	}
}

func TestAnalyzePortfolioPerformerCap(t *testing.T) {
	var products []ProductMetrics
	for i := 0; i < 8; i++ {
		products = append(products, ProductMetrics{
			Name:       string(rune('a' + i)),
			TotalSpent: 100,
			Revenue:    200 + float64(i), // all roi > 100
		})
	}
	got := AnalyzePortfolio(products)
	if len(got.TopPerformers) != 5 {
		t.Fatalf("TopPerformers has %d entries, want 5", len(got.TopPerformers))
	}
	// highest ROI first: the last product has the largest revenue
	if got.TopPerformers[0] != "h" {
		t.Errorf("TopPerformers[0] = %q, want h", got.TopPerformers[0])
	}
}

func TestAnalyzePortfolioEmpty(t *testing.T) {
	got := AnalyzePortfolio(nil)
	if got.TotalSpent != 0 || got.OverallROI != 0 || got.AverageProfitMargin != 0 {
		t.Errorf("empty portfolio = %+v, want zero metrics", got)
	}
	if len(got.TopPerformers) != 0 || len(got.UnderPerformers) != 0 {
		t.Errorf("empty portfolio has performers: %+v", got)
	}
}
