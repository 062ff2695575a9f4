package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// PriceList is an in-memory sku -> unit price table, typically loaded from a
// JSON price document supplied by the pricing collaborator.
type PriceList map[string]float64

// Lookup returns the PriceLookup view of the list.
func (pl PriceList) Lookup() PriceLookup {
	return func(sku string) (float64, bool) {
		p, ok := pl[sku]
		return p, ok
	}
}

// LoadPriceList reads a JSON document and extracts the price table found at
// the given jsonpath (use "$" when the document is the table itself). The
// table is an object of sku to number, e.g. {"RICE-001": 24.5}.
func LoadPriceList(r io.Reader, path string) (PriceList, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse price document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating price path %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer or a single answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	jmap, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("price path %q: not an object of sku to price, got %T", path, jval)
	}

	pl := make(PriceList, len(jmap))
	for sku, v := range jmap {
		price, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("price path %q: price of %q is not a number, got %T", path, sku, v)
		}
		pl[sku] = price
	}
	return pl, nil
}
