package tracker

import (
	"sort"

	"github.com/maycole/tracker/date"
)

// AggregateByPeriod buckets records into one ReportAggregate per calendar
// period, sorted ascending by period key.
//
// Records whose timestamp does not parse are silently skipped: reporting is
// best-effort over whatever history the storage collaborator supplies.
// TotalValue accumulates quantity*unitPrice for the records that carry a
// price and is rounded to two decimals at output; a bucket fed only by
// price-less records reports HasValue == false.
func AggregateByPeriod(records []InventoryRecord, period date.Period) []ReportAggregate {
	buckets := make(map[string]*ReportAggregate)

	for _, r := range records {
		day, err := date.ParseTimestamp(r.Timestamp)
		if err != nil {
			continue // skip invalid
		}
		key := day.Key(period)
		agg, ok := buckets[key]
		if !ok {
			agg = &ReportAggregate{Period: key}
			buckets[key] = agg
		}
		agg.TotalItems = agg.TotalItems.Add(r.Quantity)
		if r.UnitPrice != nil {
			agg.TotalValue = agg.TotalValue.Add(M(*r.UnitPrice, "").Mul(r.Quantity))
			agg.HasValue = true
		}
	}

	out := make([]ReportAggregate, 0, len(buckets))
	for _, agg := range buckets {
		agg.TotalValue = agg.TotalValue.Round()
		out = append(out, *agg)
	}
	// Period keys sort chronologically under plain string comparison for all
	// three key formats.
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
