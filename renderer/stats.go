package renderer

import (
	"fmt"
	"sort"

	"github.com/maycole/tracker"
)

type statsItemRow struct {
	Name     string
	SKU      string
	Quantity string
}

type statsLocationRow struct {
	Location string
	Value    string
}

type statsView struct {
	TotalValue    string
	TotalUnits    string
	LowStockValue string
	AverageCost   string
	TopItems      []statsItemRow
	Locations     []statsLocationRow
}

// StatsMarkdown renders an inventory health snapshot: totals, the most
// valuable items and the per-location value breakdown.
func StatsMarkdown(s tracker.InventoryStats) string {
	view := statsView{
		TotalValue:    s.TotalValue.String(),
		TotalUnits:    s.TotalUnits.String(),
		LowStockValue: s.LowStockValue.String(),
		AverageCost:   fmt.Sprintf("%.2f", s.AverageCost),
	}
	for _, it := range s.TopValueItems {
		view.TopItems = append(view.TopItems, statsItemRow{
			Name:     it.Name,
			SKU:      it.SKU,
			Quantity: it.Quantity.String(),
		})
	}
	locations := make([]string, 0, len(s.LocationValues))
	for loc := range s.LocationValues {
		locations = append(locations, loc)
	}
	sort.Strings(locations)
	for _, loc := range locations {
		view.Locations = append(view.Locations, statsLocationRow{
			Location: loc,
			Value:    s.LocationValues[loc].String(),
		})
	}
	return renderTemplate("stats", "stats.md", nil, view)
}
