// Package tracker provides the inventory ledger and business-metrics core of
// the MaycoleTracker application. It is designed to be pure and auditable:
// every operation takes an immutable snapshot of inventory state and returns a
// new one, so callers stay in full control of persistence and concurrency.
//
// The core functionalities include:
//   - Inventory Ledger: pure stock-quantity transitions (seed, receive,
//     consume, adjust, transfer) with a hard non-negativity floor, plus
//     valuation against a caller-supplied price lookup.
//   - Period Aggregation: bucketing of timestamped transaction records into
//     daily, ISO-weekly or monthly report rows.
//   - Business Metrics: per-product ROI, profit margin and inventory turnover,
//     a three-factor business-impact classification, and an ordered rule list
//     of recommendations.
//   - Portfolio Analysis: totals, revenue-weighted averages and performer
//     rankings across a whole product range, with a heuristic cost-savings
//     scan on top.
//   - Data Persistence Formats: human-readable JSONL import/export for items
//     and records, and CSV/XLSX report export.
//
// This package serves as the foundational logic for the `mct` command-line
// tool; it holds no global state and performs no I/O of its own.
package tracker
