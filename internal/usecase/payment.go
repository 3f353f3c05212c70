package usecase

import (
	"fmt"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/domain"
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/search"
	"purchase-insights/internal/sorting"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

var byCategory ordering.Comparator[domain.Transaction] = ordering.KeyCategory

// ComputePaymentShare reports which share of a category's purchases used the
// given payment method. Both labels match exactly and case-sensitively.
//
// txs is sorted by category in place unless it already is, and the category
// run is located with binary search.
func ComputePaymentShare(txs *collection.List[domain.Transaction], category, method string) (domain.PaymentShare, error) {
	share := domain.PaymentShare{
		Category:      category,
		PaymentMethod: method,
		Percentage:    decimal.Zero,
	}

	if txs.SortedBy() != byCategory.Name() {
		if err := sorting.Sort(txs, byCategory, sorting.AlgorithmMerge); err != nil {
			return share, fmt.Errorf("could not sort transactions by category: %w", err)
		}
	}

	matches, err := search.Find(txs, search.StrategyBinary, byCategory, domain.Transaction{Category: category})
	if err != nil {
		return share, fmt.Errorf("could not search category %q: %w", category, err)
	}

	for _, tx := range matches {
		share.Total++
		if tx.PaymentMethod == method {
			share.Matching++
		}
	}

	if share.Total > 0 {
		share.Percentage = decimal.NewFromInt(int64(share.Matching)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(share.Total))).
			Round(2)
	}
	return share, nil
}
