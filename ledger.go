package tracker

import "sort"

// This file holds the pure stock-quantity transitions. All operations share
// the same policy, chosen for caller simplicity over strict validation:
//
//   - a non-positive amount (or a zero delta) is a silent no-op that returns
//     the input collection unchanged;
//   - a resulting quantity below zero is clamped to zero, never an error;
//   - the input slice is never mutated, a new collection is returned.

// ReceiveStock increases the matching item's quantity by amount. A non-empty
// location overwrites the item's location.
func ReceiveStock(items []InventoryItem, itemID string, amount Quantity, location string) []InventoryItem {
	if !amount.IsPositive() {
		return items
	}
	next := make([]InventoryItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID != itemID {
			continue
		}
		next[i].Quantity = next[i].Quantity.Add(amount)
		if location != "" {
			next[i].Location = location
		}
	}
	return next
}

// ConsumeStock decreases the matching item's quantity by amount, clamped at zero.
func ConsumeStock(items []InventoryItem, itemID string, amount Quantity) []InventoryItem {
	if !amount.IsPositive() {
		return items
	}
	next := make([]InventoryItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Quantity = next[i].Quantity.Sub(amount).FloorZero()
		}
	}
	return next
}

// AdjustInventory applies a signed delta to the matching item, clamped at zero.
// A zero delta is a no-op.
func AdjustInventory(items []InventoryItem, adjustment InventoryAdjustment) []InventoryItem {
	if adjustment.Delta.IsZero() {
		return items
	}
	next := make([]InventoryItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID == adjustment.ItemID {
			next[i].Quantity = next[i].Quantity.Add(adjustment.Delta).FloorZero()
		}
	}
	return next
}

// TransferStock moves amount from one item to another in a single pass.
//
// The source clamps at zero while the destination always receives the full
// amount, so total quantity is NOT conserved when the source is under-stocked.
// This mirrors the historical behavior and must not change without product
// confirmation; see the named edge case in the tests.
func TransferStock(items []InventoryItem, fromID, toID string, amount Quantity) []InventoryItem {
	if !amount.IsPositive() {
		return items
	}
	next := make([]InventoryItem, len(items))
	copy(next, items)
	for i := range next {
		switch next[i].ID {
		case fromID:
			next[i].Quantity = next[i].Quantity.Sub(amount).FloorZero()
		case toID:
			next[i].Quantity = next[i].Quantity.Add(amount)
		}
	}
	return next
}

// InventoryValue sums priceLookup(sku) * quantity over all items. An unknown
// SKU contributes zero. The result carries no currency; add one with
// M(0, "USD").Add(total) when formatting.
func InventoryValue(items []InventoryItem, lookup PriceLookup) Money {
	var total Money
	for _, it := range items {
		price, ok := lookup(it.SKU)
		if !ok {
			continue
		}
		total = total.Add(M(price, "").Mul(it.Quantity))
	}
	return total
}

// InventoryStats is a snapshot of overall stock health derived from a single
// item collection and a price lookup.
type InventoryStats struct {
	TotalValue     Money
	TotalUnits     Quantity
	LowStockValue  Money   // value tied up in items at or below the low-stock threshold
	AverageCost    float64 // value per unit across the whole collection
	TopValueItems  []InventoryItem
	LocationValues map[string]Money
}

// ComputeInventoryStats derives stock health figures: total value, total
// units, the value held in low-stock items, average cost per unit, the five
// most valuable items and a per-location value breakdown. Items without a
// known price value at zero.
func ComputeInventoryStats(items []InventoryItem, lookup PriceLookup, lowStockThreshold Quantity) InventoryStats {
	stats := InventoryStats{LocationValues: make(map[string]Money)}

	value := func(it InventoryItem) Money {
		price, ok := lookup(it.SKU)
		if !ok {
			return Money{}
		}
		return M(price, "").Mul(it.Quantity)
	}

	for _, it := range items {
		v := value(it)
		stats.TotalValue = stats.TotalValue.Add(v)
		stats.TotalUnits = stats.TotalUnits.Add(it.Quantity)
		if !it.Quantity.GreaterThan(lowStockThreshold) {
			stats.LowStockValue = stats.LowStockValue.Add(v)
		}
		loc := it.Location
		if loc == "" {
			loc = "unassigned"
		}
		stats.LocationValues[loc] = stats.LocationValues[loc].Add(v)
	}
	if stats.TotalUnits.IsPositive() {
		stats.AverageCost = stats.TotalValue.Float() / stats.TotalUnits.Float()
	}

	top := make([]InventoryItem, len(items))
	copy(top, items)
	sort.SliceStable(top, func(i, j int) bool {
		return value(top[j]).LessThan(value(top[i]))
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopValueItems = top
	return stats
}

// LowStock returns the items whose quantity is at or below the threshold,
// preserving collection order.
func LowStock(items []InventoryItem, threshold Quantity) []InventoryItem {
	var low []InventoryItem
	for _, it := range items {
		if !it.Quantity.GreaterThan(threshold) {
			low = append(low, it)
		}
	}
	return low
}
