package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"purchase-insights/internal/domain"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	transactionColumns = 6
	reviewColumns      = 4

	maxReviewLine = 1024 * 1024
)

// CSVRecordRepository implements the RecordRepository interface for CSV files.
//
// Loading is fail-soft: a row with a missing column, an unparsable price,
// date or rating is logged and skipped, and the remaining rows still load.
type CSVRecordRepository struct {
	logger *slog.Logger
}

// NewCSVRecordRepository creates a new repository instance. A nil logger uses slog.Default().
func NewCSVRecordRepository(logger *slog.Logger) *CSVRecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVRecordRepository{logger: logger}
}

// GetTransactions reads and parses a transactions CSV file with the columns
// customerID, product, category, price, date (DD/MM/YYYY), paymentMethod.
func (r *CSVRecordRepository) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := r.readRows(ctx, path, func(record []string) error {
		tx, err := parseTransaction(record)
		if err != nil {
			return err
		}
		transactions = append(transactions, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetReviews reads and parses a reviews CSV file with the columns
// product_id, customer_id, rating, review. The file is read line by line and
// everything after the third delimiter belongs to the review, so commas and
// stray quotes in the text never spill into the next row.
func (r *CSVRecordRepository) GetReviews(ctx context.Context, path string) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReviewLine)

	// Skip header
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var reviews []domain.Review
	line, skipped := 1, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		review, err := parseReview(text)
		if err != nil {
			r.logger.Warn("skipping malformed row", "path", path, "line", line, "error", err)
			skipped++
			continue
		}
		reviews = append(reviews, review)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading record from %s: %w", path, err)
	}

	r.logSkipped(path, skipped)
	return reviews, nil
}

// readRows opens path, skips the header and hands each row to parse.
// Rows that fail to parse are logged and skipped.
func (r *CSVRecordRepository) readRows(ctx context.Context, path string, parse func(record []string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.logger.Warn("skipping malformed row", "path", path, "line", parseErr.Line, "error", err)
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}

		line, _ := reader.FieldPos(0)
		if err := parse(record); err != nil {
			r.logger.Warn("skipping malformed row", "path", path, "line", line, "error", err)
			skipped++
		}
	}

	r.logSkipped(path, skipped)
	return nil
}

func (r *CSVRecordRepository) logSkipped(path string, skipped int) {
	if skipped > 0 {
		r.logger.Info("rows skipped while loading", "path", path, "skipped", skipped)
	}
}

func parseTransaction(record []string) (domain.Transaction, error) {
	if len(record) < transactionColumns {
		return domain.Transaction{}, fmt.Errorf("expected %d columns, got %d", transactionColumns, len(record))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse price '%s': %w", record[3], err)
	}
	if price.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("negative price '%s'", record[3])
	}

	date, err := domain.ParseDate(record[4])
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not parse date '%s': %w", record[4], err)
	}

	return domain.Transaction{
		CustomerID:    strings.TrimSpace(record[0]),
		Product:       strings.TrimSpace(record[1]),
		Category:      strings.TrimSpace(record[2]),
		Price:         price,
		Date:          date,
		PaymentMethod: strings.TrimSpace(record[5]),
	}, nil
}

func parseReview(line string) (domain.Review, error) {
	var fields [reviewColumns - 1]string
	rest, more := line, true
	for i := range fields {
		if !more {
			return domain.Review{}, fmt.Errorf("expected %d columns, got %d", reviewColumns, i)
		}
		var err error
		fields[i], rest, more, err = cutField(rest)
		if err != nil {
			return domain.Review{}, err
		}
	}

	rating, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.Review{}, fmt.Errorf("could not parse rating '%s': %w", fields[2], err)
	}

	var text string
	if more {
		text = unquoteReview(rest)
	}

	return domain.Review{
		ProductID:  strings.TrimSpace(fields[0]),
		CustomerID: strings.TrimSpace(fields[1]),
		Rating:     rating,
		Text:       text,
	}, nil
}

// cutField splits the leading field off s. A field that opens with a quote
// runs to its closing quote, with doubled quotes standing for one.
func cutField(s string) (field, rest string, more bool, err error) {
	if !strings.HasPrefix(s, `"`) {
		field, rest, more = strings.Cut(s, ",")
		return field, rest, more, nil
	}

	for j := 1; ; {
		k := strings.IndexByte(s[j:], '"')
		if k < 0 {
			return "", "", false, errors.New("unterminated quoted field")
		}
		j += k
		if j+1 < len(s) && s[j+1] == '"' {
			j += 2
			continue
		}

		field = strings.ReplaceAll(s[1:j], `""`, `"`)
		after := s[j+1:]
		if after == "" {
			return field, "", false, nil
		}
		if after[0] != ',' {
			return "", "", false, fmt.Errorf("unexpected text after quoted field %q", field)
		}
		return field, after[1:], true, nil
	}
}

// unquoteReview strips one pair of outer quotes when they enclose the whole
// text. Anything else is returned unchanged.
func unquoteReview(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	if strings.Contains(strings.ReplaceAll(inner, `""`, ""), `"`) {
		return s
	}
	return strings.ReplaceAll(inner, `""`, `"`)
}
