package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into a database.

// ImportItems imports inventory items from 'r' in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one item: id, sku, name, unit, quantity, optional location and metadata.
// Blank lines are skipped.
func ImportItems(r io.Reader) ([]InventoryItem, error) {
	var items []InventoryItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var it InventoryItem
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, fmt.Errorf("cannot parse line for item import format: %q: %w", string(line), err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read item import format: %w", err)
	}
	return items, nil
}

// ExportItems exports inventory items to 'w' in the import/export format,
// one JSON object per line.
func ExportItems(w io.Writer, items []InventoryItem) error {
	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("cannot marshal item %q: %w", it.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write item format: %w", err)
		}
	}
	return nil
}

// ImportRecords imports transaction records from 'r' in the import/export
// format: one JSON object per line with id, timestamp, item, quantity and an
// optional unitPrice. Timestamps are kept verbatim; the aggregator decides
// later which ones are countable.
func ImportRecords(r io.Reader) ([]InventoryRecord, error) {
	var records []InventoryRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec InventoryRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse line for record import format: %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read record import format: %w", err)
	}
	return records, nil
}

// ImportProducts imports product metrics from 'r' in the import/export format:
// one JSON object per line with name, totalSpent, revenue, quantity,
// costPerUnit and daysInInventory. This is the input of the analysis commands.
func ImportProducts(r io.Reader) ([]ProductMetrics, error) {
	var products []ProductMetrics
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var p ProductMetrics
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("cannot parse line for product import format: %q: %w", string(line), err)
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read product import format: %w", err)
	}
	return products, nil
}

// ExportProducts exports product metrics to 'w' in the import/export format.
func ExportProducts(w io.Writer, products []ProductMetrics) error {
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("cannot marshal product %q: %w", p.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write product format: %w", err)
		}
	}
	return nil
}

// ExportRecords exports transaction records to 'w' in the import/export format.
func ExportRecords(w io.Writer, records []InventoryRecord) error {
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("cannot marshal record %q: %w", rec.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write record format: %w", err)
		}
	}
	return nil
}
