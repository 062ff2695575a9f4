package tracker

// InventoryItem is a single stock-keeping unit.
//
// Items are value records: ledger operations never mutate an item in place,
// they return a new collection with updated copies. The ID is stable for the
// lifetime of the item; deletion is a storage-layer concern and never happens
// here.
type InventoryItem struct {
	ID       string            `json:"id"`
	SKU      string            `json:"sku"`
	Name     string            `json:"name"`
	Unit     string            `json:"unit"`
	Quantity Quantity          `json:"quantity"`
	Location string            `json:"location,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// InventoryAdjustment is a requested signed delta on one item's quantity.
type InventoryAdjustment struct {
	ItemID    string   `json:"itemId"`
	Delta     Quantity `json:"delta"` // positive to increase, negative to decrease
	Reason    string   `json:"reason,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// PriceLookup resolves a SKU to its unit price. The second return reports
// whether a price is known; an unknown SKU values at zero.
type PriceLookup func(sku string) (float64, bool)
