package gateway

import (
	"context"
	"fmt"
	"purchase-insights/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	rankingSheet      = "Ranking"
	paymentShareSheet = "PaymentShare"
	defaultSheet      = "Sheet1"
)

// XLSXReportExporter writes analysis reports as Excel workbooks.
type XLSXReportExporter struct{}

// NewXLSXReportExporter creates a new exporter instance.
func NewXLSXReportExporter() *XLSXReportExporter {
	return &XLSXReportExporter{}
}

// ExportReviewReport writes a Summary sheet with the reconciliation counts and
// a Ranking sheet with one row per word.
func (e *XLSXReportExporter) ExportReviewReport(ctx context.Context, path string, report *domain.ReviewReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	summary := [][]interface{}{
		{"Run ID", report.RunID},
		{"Rating", report.Rating},
		{"Total Reviews", report.Reconciliation.TotalReviews},
		{"Kept Reviews", report.Reconciliation.KeptReviews},
		{"Dropped Reviews", report.Reconciliation.DroppedReviews},
		{"Customers With Transactions", report.Reconciliation.Customers},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(rankingSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", rankingSheet, err)
	}
	ranking := make([][]interface{}, 0, len(report.Ranking)+1)
	ranking = append(ranking, []interface{}{"Word", "Count"})
	for _, wf := range report.Ranking {
		ranking = append(ranking, []interface{}{wf.Word, wf.Count})
	}
	if err := writeRows(f, rankingSheet, ranking); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// ExportPaymentShare writes a single PaymentShare sheet.
func (e *XLSXReportExporter) ExportPaymentShare(ctx context.Context, path string, share *domain.PaymentShare) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, paymentShareSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Category", "Payment Method", "Total", "Matching", "Percentage"},
		{share.Category, share.PaymentMethod, share.Total, share.Matching, share.Percentage.StringFixed(2)},
	}
	if err := writeRows(f, paymentShareSheet, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
