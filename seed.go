package tracker

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Seeder generates starter inventories from an industry catalog.
//
// Id generation and randomness are injected so that seeding is reproducible in
// tests; the default Seeder uses UUIDs and a time-seeded source.
type Seeder struct {
	catalog *Catalog
	newID   func() string
	rand    *rand.Rand
}

// NewSeeder returns a Seeder over the given catalog (nil means the default
// catalog) with UUID ids and time-seeded randomness.
func NewSeeder(catalog *Catalog) *Seeder {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Seeder{
		catalog: catalog,
		newID:   func() string { return "itm_" + uuid.NewString() },
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithIDFunc replaces the id generator, for deterministic seeding.
func (s *Seeder) WithIDFunc(newID func() string) *Seeder {
	s.newID = newID
	return s
}

// WithRand replaces the random source, for deterministic seeding.
func (s *Seeder) WithRand(r *rand.Rand) *Seeder {
	s.rand = r
	return s
}

// SeedItemsForIndustry generates qty items for the industry, cycling through
// its common-item catalog (at least 3 entries are emitted when the catalog
// allows) and padding with generated placeholder items once the catalog is
// exhausted. Quantities are randomized: 1..100 for catalog items, 0..199 for
// placeholders. An unknown industry id falls back to the catalog's first
// industry.
func (s *Seeder) SeedItemsForIndustry(industryID string, qty int) []InventoryItem {
	industry := s.catalog.Industry(industryID)
	common := industry.CommonItems

	items := make([]InventoryItem, 0, qty)
	if len(common) > 0 {
		n := min(len(common), qty)
		if n < 3 {
			n = 3
		}
		for i := 0; i < n; i++ {
			entry := common[i%len(common)]
			unit := entry.Unit
			if unit == "" {
				unit = "unit"
			}
			items = append(items, InventoryItem{
				ID:       s.newID(),
				SKU:      entry.SKU,
				Name:     entry.Name,
				Unit:     unit,
				Quantity: Q(s.rand.Intn(100) + 1),
			})
		}
	}

	// if qty is larger than the catalog, append generated placeholders
	for len(items) < qty {
		items = append(items, InventoryItem{
			ID:       s.newID(),
			SKU:      fmt.Sprintf("GEN-%d", len(items)+1),
			Name:     fmt.Sprintf("Generated Item %d", len(items)+1),
			Unit:     "unit",
			Quantity: Q(s.rand.Intn(200)),
		})
	}
	return items
}

// SeedGovernmentSample is a convenience seed for the government industry.
func (s *Seeder) SeedGovernmentSample() []InventoryItem {
	return s.SeedItemsForIndustry("government", 8)
}
