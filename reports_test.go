package tracker

import (
	"testing"

	"github.com/maycole/tracker/date"
)

func price(v float64) *float64 { return &v }

func TestAggregateByPeriodDaily(t *testing.T) {
	records := []InventoryRecord{
		{ID: "r1", Timestamp: "2025-01-03T10:00:00Z", Item: "Rice", Quantity: Q(2), UnitPrice: price(10)},
		{ID: "r2", Timestamp: "2025-01-01T08:00:00Z", Item: "Oil", Quantity: Q(5)},
		{ID: "r3", Timestamp: "2025-01-03T15:30:00Z", Item: "Rice", Quantity: Q(1), UnitPrice: price(10)},
	}
	got := AggregateByPeriod(records, date.Daily)

	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	// chronological order, earliest first
	if got[0].Period != "2025-01-01" || got[1].Period != "2025-01-03" {
		t.Fatalf("periods = %q, %q; want 2025-01-01, 2025-01-03", got[0].Period, got[1].Period)
	}
	if !got[0].TotalItems.Equal(Q(5)) {
		t.Errorf("2025-01-01 totalItems = %v, want 5", got[0].TotalItems)
	}
	if got[0].HasValue {
		t.Error("2025-01-01 HasValue = true, want false (no priced record)")
	}
	if !got[1].TotalItems.Equal(Q(3)) {
		t.Errorf("2025-01-03 totalItems = %v, want 3", got[1].TotalItems)
	}
	if !got[1].TotalValue.Equal(M(30, "")) {
		t.Errorf("2025-01-03 totalValue = %v, want 30", got[1].TotalValue)
	}
}

func TestAggregateByPeriodSkipsInvalidTimestamps(t *testing.T) {
	records := []InventoryRecord{
		{ID: "r1", Timestamp: "not-a-date", Item: "Rice", Quantity: Q(4), UnitPrice: price(1)},
		{ID: "r2", Timestamp: "2025-02-01", Item: "Oil", Quantity: Q(1)},
	}
	got := AggregateByPeriod(records, date.Daily)
	if len(got) != 1 {
		t.Fatalf("got %d buckets, want 1", len(got))
	}
	if got[0].Period != "2025-02-01" {
		t.Errorf("period = %q, want 2025-02-01", got[0].Period)
	}
	if !got[0].TotalItems.Equal(Q(1)) {
		t.Errorf("totalItems = %v, want 1 (invalid record must not count)", got[0].TotalItems)
	}
}

func TestAggregateByPeriodEmpty(t *testing.T) {
	if got := AggregateByPeriod(nil, date.Monthly); len(got) != 0 {
		t.Errorf("got %d buckets, want 0", len(got))
	}
}

func TestAggregateByPeriodWeekly(t *testing.T) {
	records := []InventoryRecord{
		// Monday and Sunday of the same ISO week
		{ID: "r1", Timestamp: "2025-10-06", Item: "A", Quantity: Q(1)},
		{ID: "r2", Timestamp: "2025-10-12", Item: "B", Quantity: Q(2)},
		// the next Monday opens a new week
		{ID: "r3", Timestamp: "2025-10-13", Item: "C", Quantity: Q(4)},
		// end-of-year day that belongs to next year's first ISO week
		{ID: "r4", Timestamp: "2024-12-30", Item: "D", Quantity: Q(8)},
	}
	got := AggregateByPeriod(records, date.Weekly)

	want := []struct {
		period string
		items  Quantity
	}{
		{"2025-W01", Q(8)},
		{"2025-W41", Q(3)},
		{"2025-W42", Q(4)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Period != w.period {
			t.Errorf("bucket[%d].Period = %q, want %q", i, got[i].Period, w.period)
		}
		if !got[i].TotalItems.Equal(w.items) {
			t.Errorf("bucket[%d].TotalItems = %v, want %v", i, got[i].TotalItems, w.items)
		}
	}
}

func TestAggregateByPeriodMonthly(t *testing.T) {
	records := []InventoryRecord{
		{ID: "r1", Timestamp: "2025-03-31", Item: "A", Quantity: Q(1), UnitPrice: price(2.555)},
		{ID: "r2", Timestamp: "2025-03-01", Item: "B", Quantity: Q(1), UnitPrice: price(1)},
		{ID: "r3", Timestamp: "2025-04-01", Item: "C", Quantity: Q(9)},
	}
	got := AggregateByPeriod(records, date.Monthly)

	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	if got[0].Period != "2025-03" || got[1].Period != "2025-04" {
		t.Fatalf("periods = %q, %q; want 2025-03, 2025-04", got[0].Period, got[1].Period)
	}
	// 2.555 + 1 rounds to 3.56 at output precision
	if !got[0].TotalValue.Equal(M(3.56, "")) {
		t.Errorf("2025-03 totalValue = %v, want 3.56", got[0].TotalValue)
	}
	if got[1].HasValue {
		t.Error("2025-04 HasValue = true, want false")
	}
}

func TestAggregateMixedPricedAndUnpriced(t *testing.T) {
	// one bucket where only some records carry a price still reports a value
	records := []InventoryRecord{
		{ID: "r1", Timestamp: "2025-05-05", Item: "A", Quantity: Q(3)},
		{ID: "r2", Timestamp: "2025-05-05", Item: "B", Quantity: Q(2), UnitPrice: price(4)},
	}
	got := AggregateByPeriod(records, date.Daily)
	if len(got) != 1 {
		t.Fatalf("got %d buckets, want 1", len(got))
	}
	if !got[0].TotalItems.Equal(Q(5)) {
		t.Errorf("totalItems = %v, want 5", got[0].TotalItems)
	}
	if !got[0].HasValue || !got[0].TotalValue.Equal(M(8, "")) {
		t.Errorf("totalValue = %v (HasValue=%v), want 8 with HasValue=true", got[0].TotalValue, got[0].HasValue)
	}
}
