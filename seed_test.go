package tracker

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// deterministicSeeder returns a Seeder with a counting id generator and a
// fixed random source.
func deterministicSeeder(catalog *Catalog) *Seeder {
	n := 0
	return NewSeeder(catalog).
		WithIDFunc(func() string { n++; return fmt.Sprintf("itm_%03d", n) }).
		WithRand(rand.New(rand.NewSource(1)))
}

func TestSeedItemsForIndustry(t *testing.T) {
	s := deterministicSeeder(nil)
	items := s.SeedItemsForIndustry("restaurant", 10)

	if len(items) != 10 {
		t.Fatalf("seeded %d items, want 10", len(items))
	}
	// the first entries cycle through the restaurant catalog
	wantSKUs := []string{"RICE-001", "TOMATO-001", "OIL-001"}
	for i, want := range wantSKUs {
		if items[i].SKU != want {
			t.Errorf("items[%d].SKU = %q, want %q", i, items[i].SKU, want)
		}
	}
	// the rest are generated placeholders
	for i := 3; i < 10; i++ {
		if !strings.HasPrefix(items[i].SKU, "GEN-") {
			t.Errorf("items[%d].SKU = %q, want GEN- placeholder", i, items[i].SKU)
		}
	}
	// ids come from the injected generator and are unique
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}
	// catalog quantities are in 1..100, placeholders in 0..199
	for i, it := range items {
		if it.Quantity.IsNegative() {
			t.Errorf("items[%d].Quantity = %v, want >= 0", i, it.Quantity)
		}
		if i < 3 && it.Quantity.IsZero() {
			t.Errorf("items[%d].Quantity = 0, catalog items start at 1", i)
		}
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := deterministicSeeder(nil).SeedItemsForIndustry("healthcare", 6)
	b := deterministicSeeder(nil).SeedItemsForIndustry("healthcare", 6)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].SKU != b[i].SKU || !a[i].Quantity.Equal(b[i].Quantity) {
			t.Errorf("items[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSeedEmitsAtLeastThree(t *testing.T) {
	// asking for fewer than 3 still emits 3 catalog entries
	items := deterministicSeeder(nil).SeedItemsForIndustry("retail", 1)
	if len(items) != 3 {
		t.Fatalf("seeded %d items, want 3", len(items))
	}
	// retail has only 2 common items, so the third cycles back
	if items[2].SKU != "SKU-001" {
		t.Errorf("items[2].SKU = %q, want SKU-001", items[2].SKU)
	}
}

func TestSeedUnknownIndustryFallsBack(t *testing.T) {
	items := deterministicSeeder(nil).SeedItemsForIndustry("does-not-exist", 3)
	if items[0].SKU != "RICE-001" {
		t.Errorf("items[0].SKU = %q, want first catalog industry (restaurant)", items[0].SKU)
	}
}

func TestSeedGovernmentSample(t *testing.T) {
	items := deterministicSeeder(nil).SeedGovernmentSample()
	if len(items) != 8 {
		t.Fatalf("seeded %d items, want 8", len(items))
	}
	if items[0].SKU != "GOV-STD-001" {
		t.Errorf("items[0].SKU = %q, want GOV-STD-001", items[0].SKU)
	}
}

func TestLoadCatalog(t *testing.T) {
	const src = `
[[industries]]
id = "brewery"
name = "Brewery"

[[industries.items]]
sku = "HOPS-001"
name = "Hops"
unit = "kg"
`
	c, err := LoadCatalog(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	if got := c.Industry("brewery").Name; got != "Brewery" {
		t.Errorf("industry name = %q, want Brewery", got)
	}
	if ids := c.IDs(); len(ids) != 1 || ids[0] != "brewery" {
		t.Errorf("IDs() = %v, want [brewery]", ids)
	}

	if _, err := LoadCatalog(strings.NewReader("")); err == nil {
		t.Error("LoadCatalog(empty) = nil error, want error")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Industries) != 9 {
		t.Fatalf("default catalog has %d industries, want 9", len(c.Industries))
	}
	if got := c.Industry("government"); len(got.CommonItems) != 4 {
		t.Errorf("government industry has %d items, want 4", len(got.CommonItems))
	}
}
