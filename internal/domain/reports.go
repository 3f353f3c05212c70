package domain

import "github.com/shopspring/decimal"

// PaymentShare reports how many purchases in a category were paid with a given method.
type PaymentShare struct {
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Total         int             `json:"total"`
	Matching      int             `json:"matching"`
	Percentage    decimal.Decimal `json:"percentage"` // Rounded to two places
}

// WordFrequency is one entry of a token frequency ranking.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ReconciliationSummary provides the counts produced by a review reconciliation pass.
type ReconciliationSummary struct {
	TotalReviews   int `json:"total_reviews"`
	KeptReviews    int `json:"kept_reviews"`
	DroppedReviews int `json:"dropped_reviews"`
	Customers      int `json:"customers_with_transactions"`
}

// ReviewReport is the top-level structure for the review analysis output.
type ReviewReport struct {
	RunID          string                `json:"run_id"`
	Rating         int                   `json:"rating"`
	Reconciliation ReconciliationSummary `json:"reconciliation"`
	Ranking        []WordFrequency       `json:"ranking"`
	ExportedTo     string                `json:"exported_to,omitempty"`
}
