package tracker

// InventoryRecord is one historical transaction line used for reporting.
//
// The timestamp is kept as the raw string supplied by the storage collaborator;
// only records whose timestamp parses to a valid date are counted by the
// aggregator.
type InventoryRecord struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"` // ISO date or RFC3339 timestamp
	Item      string   `json:"item"`
	Quantity  Quantity `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
}

// ReportAggregate is one bucketed reporting row.
type ReportAggregate struct {
	Period     string   `json:"period"` // e.g. 2025-10-11, 2025-W41 or 2025-10
	TotalItems Quantity `json:"totalItems"`
	TotalValue Money    `json:"totalValue"`
	HasValue   bool     `json:"-"` // false when no record in the bucket carried a price
}
