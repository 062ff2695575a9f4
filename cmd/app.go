// Package cmd implements the CLI application to manage a business inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/maycole/tracker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&seedCmd{}, "inventory")
	c.Register(&receiveCmd{}, "inventory")
	c.Register(&consumeCmd{}, "inventory")
	c.Register(&adjustCmd{}, "inventory")
	c.Register(&transferCmd{}, "inventory")
	c.Register(&valueCmd{}, "inventory")

	c.Register(&reportCmd{}, "reports")
	c.Register(&analyzeCmd{}, "reports")
	c.Register(&portfolioCmd{}, "reports")
	c.Register(&savingsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&assistCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var itemsFile = flag.String("items-file", "items.jsonl", "Path to the inventory items file (JSONL format)")
var recordsFile = flag.String("records-file", "records.jsonl", "Path to the transaction records file (JSONL format)")
var productsFile = flag.String("products-file", "products.jsonl", "Path to the product metrics file (JSONL format)")
var pricesFile = flag.String("prices-file", "prices.json", "Path to the price document (JSON)")
var pricesPath = flag.String("prices-path", "$", "jsonpath to the sku-to-price table inside the price document")
var catalogFile = flag.String("catalog-file", "", "Path to a custom industry catalog (TOML). Empty for the built-in catalog.")
var currency = flag.String("currency", "USD", "Currency used to format monetary values")

// InitLogger initializes the global zerolog logger with a structured format.
func InitLogger() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// DecodeItems reads the inventory from the app items file. A missing file is
// an empty inventory.
func DecodeItems() ([]tracker.InventoryItem, error) {
	f, err := os.Open(*itemsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("file", *itemsFile).Msg("items file does not exist, starting from an empty inventory")
			return nil, nil
		}
		return nil, fmt.Errorf("could not open items file %q: %w", *itemsFile, err)
	}
	defer f.Close()
	return tracker.ImportItems(f)
}

// EncodeItems writes the whole item collection back to the app items file.
func EncodeItems(items []tracker.InventoryItem) error {
	f, err := os.Create(*itemsFile)
	if err != nil {
		return fmt.Errorf("could not write items file %q: %w", *itemsFile, err)
	}
	defer f.Close()
	return tracker.ExportItems(f, items)
}

// DecodeRecords reads the transaction records from the app records file.
func DecodeRecords() ([]tracker.InventoryRecord, error) {
	f, err := os.Open(*recordsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open records file %q: %w", *recordsFile, err)
	}
	defer f.Close()
	return tracker.ImportRecords(f)
}

// DecodeProducts reads the product metrics from the app products file.
func DecodeProducts() ([]tracker.ProductMetrics, error) {
	f, err := os.Open(*productsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open products file %q: %w", *productsFile, err)
	}
	defer f.Close()
	return tracker.ImportProducts(f)
}

// LoadPrices reads the price document from the app prices file. A missing file
// is an empty price list, every item then values at zero.
func LoadPrices() (tracker.PriceList, error) {
	f, err := os.Open(*pricesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("file", *pricesFile).Msg("price document does not exist, all items value at zero")
			return tracker.PriceList{}, nil
		}
		return nil, fmt.Errorf("could not open price document %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return tracker.LoadPriceList(f, *pricesPath)
}

// LoadAppCatalog returns the industry catalog selected by the app flags.
func LoadAppCatalog() (*tracker.Catalog, error) {
	if *catalogFile == "" {
		return tracker.DefaultCatalog(), nil
	}
	f, err := os.Open(*catalogFile)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w", *catalogFile, err)
	}
	defer f.Close()
	return tracker.LoadCatalog(f)
}

// withCurrency attaches the app currency to a weak-currency amount.
func withCurrency(m tracker.Money) tracker.Money {
	return tracker.M(0, *currency).Add(m)
}
