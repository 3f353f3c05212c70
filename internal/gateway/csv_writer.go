package gateway

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"purchase-insights/internal/domain"
	"strconv"
	"strings"
)

var reviewHeader = []string{"product_id", "customer_id", "rating", "review"}

// CSVReviewExporter writes reviews in the same four column layout they are loaded from.
type CSVReviewExporter struct{}

// NewCSVReviewExporter creates a new exporter instance.
func NewCSVReviewExporter() *CSVReviewExporter {
	return &CSVReviewExporter{}
}

// ExportReviews writes the header and one row per review to path. The review
// text is always quoted, with embedded quotes doubled. Ids are quoted only
// when they hold a delimiter or a quote.
func (e *CSVReviewExporter) ExportReviews(ctx context.Context, path string, reviews []domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create review export %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(strings.Join(reviewHeader, ",") + "\n"); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, r := range reviews {
		row := quoteIfNeeded(r.ProductID) + "," + quoteIfNeeded(r.CustomerID) + "," + strconv.Itoa(r.Rating) + "," + quoteField(r.Text) + "\n"
		if _, err := w.WriteString(row); err != nil {
			return fmt.Errorf("failed to write review to %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, "\",\r\n") {
		return quoteField(s)
	}
	return s
}
