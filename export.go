package tracker

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Report export formatters. These are deliberately thin: the core computes,
// the formats only carry the numbers to spreadsheets.

// ExportReportCSV writes the aggregates as CSV with a period/totalItems/
// totalValue header. Buckets without a value leave the column empty.
func ExportReportCSV(w io.Writer, aggregates []ReportAggregate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"period", "totalItems", "totalValue"}); err != nil {
		return fmt.Errorf("cannot write report csv header: %w", err)
	}
	for _, agg := range aggregates {
		value := ""
		if agg.HasValue {
			value = fmt.Sprintf("%.2f", agg.TotalValue.Float())
		}
		if err := cw.Write([]string{agg.Period, agg.TotalItems.String(), value}); err != nil {
			return fmt.Errorf("cannot write report csv row %q: %w", agg.Period, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const reportSheet = "Report"

// ExportReportXLSX writes the aggregates as a one-sheet XLSX workbook.
func ExportReportXLSX(w io.Writer, aggregates []ReportAggregate) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("cannot create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot drop default sheet: %w", err)
	}

	headers := []string{"Period", "Total Items", "Total Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return fmt.Errorf("cannot write report header: %w", err)
		}
	}
	for row, agg := range aggregates {
		values := []any{agg.Period, agg.TotalItems.Float()}
		if agg.HasValue {
			values = append(values, agg.TotalValue.Float())
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return fmt.Errorf("cannot write report row %q: %w", agg.Period, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write report workbook: %w", err)
	}
	return nil
}

const portfolioSheet = "Portfolio"

// ExportPortfolioXLSX writes the portfolio metrics as a two-column summary
// sheet followed by the performer lists.
func ExportPortfolioXLSX(w io.Writer, m PortfolioMetrics) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(portfolioSheet)
	if err != nil {
		return fmt.Errorf("cannot create portfolio sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot drop default sheet: %w", err)
	}

	rows := []struct {
		label string
		value any
	}{
		{"Total Spent", m.TotalSpent},
		{"Total Revenue", m.TotalRevenue},
		{"Total Profit", m.TotalProfit},
		{"Overall ROI", m.OverallROI.String()},
		{"Average Profit Margin", m.AverageProfitMargin.String()},
		{"Profitable Products", m.ProfitableProducts},
		{"Unprofitable Products", m.UnprofitableProducts},
	}
	for i, r := range rows {
		if err := f.SetCellValue(portfolioSheet, fmt.Sprintf("A%d", i+1), r.label); err != nil {
			return fmt.Errorf("cannot write portfolio label %q: %w", r.label, err)
		}
		if err := f.SetCellValue(portfolioSheet, fmt.Sprintf("B%d", i+1), r.value); err != nil {
			return fmt.Errorf("cannot write portfolio value for %q: %w", r.label, err)
		}
	}

	row := len(rows) + 2
	for i, name := range m.TopPerformers {
		f.SetCellValue(portfolioSheet, fmt.Sprintf("A%d", row), "Top Performer "+fmt.Sprint(i+1))
		f.SetCellValue(portfolioSheet, fmt.Sprintf("B%d", row), name)
		row++
	}
	for i, name := range m.UnderPerformers {
		f.SetCellValue(portfolioSheet, fmt.Sprintf("A%d", row), "Under Performer "+fmt.Sprint(i+1))
		f.SetCellValue(portfolioSheet, fmt.Sprintf("B%d", row), name)
		row++
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write portfolio workbook: %w", err)
	}
	return nil
}
