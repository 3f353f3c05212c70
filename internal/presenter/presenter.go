// Package presenter renders analysis results for the console.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"purchase-insights/internal/domain"
	"strings"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be one of %v", s, []Format{FormatText, FormatJSON})
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// Transactions writes one block per transaction.
func Transactions(w io.Writer, txs []domain.Transaction) error {
	var b strings.Builder
	for _, tx := range txs {
		fmt.Fprintf(&b, "Customer ID: %s\n", tx.CustomerID)
		fmt.Fprintf(&b, "Product: %s\n", tx.Product)
		fmt.Fprintf(&b, "Category: %s\n", tx.Category)
		fmt.Fprintf(&b, "Price: $%s\n", tx.Price.StringFixed(2))
		fmt.Fprintf(&b, "Date: %s\n", tx.Date)
		fmt.Fprintf(&b, "Payment Method: %s\n\n", tx.PaymentMethod)
	}
	fmt.Fprintf(&b, "Total Transactions: %d\n", len(txs))
	_, err := io.WriteString(w, b.String())
	return err
}

// SearchResult writes the matches of a search followed by their count.
func SearchResult(w io.Writer, key, target string, txs []domain.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintf(w, "No transactions found with %s %s.\n", key, target)
		return err
	}

	var b strings.Builder
	if err := Transactions(&b, txs); err != nil {
		return err
	}
	fmt.Fprintf(&b, "Transactions found with %s %s: %d\n", key, target, len(txs))
	_, err := io.WriteString(w, b.String())
	return err
}

// PaymentShare writes the category payment analysis.
func PaymentShare(w io.Writer, share *domain.PaymentShare) error {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s CATEGORY PAYMENT ANALYSIS ===\n", strings.ToUpper(share.Category))
	if share.Total == 0 {
		fmt.Fprintf(&b, "No transactions in %s category.\n", share.Category)
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "Total %s Transactions: %d\n", share.Category, share.Total)
	fmt.Fprintf(&b, "%s transactions paid via %s: %d\n", share.Category, share.PaymentMethod, share.Matching)
	fmt.Fprintf(&b, "Percentage of %s purchases made using %s: %s%%\n",
		share.Category, share.PaymentMethod, share.Percentage.StringFixed(2))
	_, err := io.WriteString(w, b.String())
	return err
}

// ReviewReport writes the reconciliation counts and the word ranking.
func ReviewReport(w io.Writer, report *domain.ReviewReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Reviews (Raw): %d\n", report.Reconciliation.TotalReviews)
	fmt.Fprintf(&b, "Total Reviews (Filtered): %d\n", report.Reconciliation.KeptReviews)
	if report.ExportedTo != "" {
		fmt.Fprintf(&b, "Filtered reviews saved to '%s'\n", report.ExportedTo)
	}

	if len(report.Ranking) == 0 {
		fmt.Fprintf(&b, "No %d-star reviews found.\n", report.Rating)
	} else {
		fmt.Fprintf(&b, "\nWord Frequencies in %d-Star Reviews:\n", report.Rating)
		for _, wf := range report.Ranking {
			fmt.Fprintf(&b, "%s: %d\n", wf.Word, wf.Count)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Reviews writes one block per review.
func Reviews(w io.Writer, reviews []domain.Review) error {
	var b strings.Builder
	for _, r := range reviews {
		fmt.Fprintf(&b, "Product ID: %s\n", r.ProductID)
		fmt.Fprintf(&b, "Customer ID: %s\n", r.CustomerID)
		fmt.Fprintf(&b, "Rating: %d\n", r.Rating)
		fmt.Fprintf(&b, "Review: %s\n\n", r.Text)
	}
	fmt.Fprintf(&b, "Total Reviews: %d\n", len(reviews))
	_, err := io.WriteString(w, b.String())
	return err
}
