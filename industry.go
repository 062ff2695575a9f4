package tracker

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/BurntSushi/toml"
)

// CatalogItem is one common item of an industry's seed catalog.
type CatalogItem struct {
	SKU  string `toml:"sku"`
	Name string `toml:"name"`
	Unit string `toml:"unit"`
}

// Industry groups the common items a business of that kind stocks.
type Industry struct {
	ID          string        `toml:"id"`
	Name        string        `toml:"name"`
	CommonItems []CatalogItem `toml:"items"`
}

// Catalog is the set of supported industries.
type Catalog struct {
	Industries []Industry `toml:"industries"`
}

//go:embed industries.toml
var defaultCatalogTOML []byte

var defaultCatalogOnce = sync.OnceValue(func() *Catalog {
	var c Catalog
	if err := toml.Unmarshal(defaultCatalogTOML, &c); err != nil {
		// the embedded catalog is part of the build, a parse failure is a bug
		panic(fmt.Sprintf("embedded industry catalog is invalid: %v", err))
	}
	return &c
})

// DefaultCatalog returns the compiled-in industry catalog.
func DefaultCatalog() *Catalog { return defaultCatalogOnce() }

// LoadCatalog reads an industry catalog in TOML format.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("cannot parse industry catalog: %w", err)
	}
	if len(c.Industries) == 0 {
		return nil, fmt.Errorf("industry catalog declares no industries")
	}
	return &c, nil
}

// Industry returns the industry with the given id, falling back to the first
// catalog entry when the id is unknown.
func (c *Catalog) Industry(id string) Industry {
	for _, ind := range c.Industries {
		if ind.ID == id {
			return ind
		}
	}
	return c.Industries[0]
}

// IDs lists the catalog's industry ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Industries))
	for _, ind := range c.Industries {
		ids = append(ids, ind.ID)
	}
	return ids
}
