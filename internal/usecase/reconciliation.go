package usecase

import (
	"log/slog"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/domain"
)

// ReconcileReviews drops every review that is not backed by a purchase.
//
// The k-th review of a customer, in input order, is kept only when that
// customer has at least k transactions. Dropped reviews are spliced out of
// reviews in the same pass, so the surviving reviews keep their input order.
// The caller must not hold other cursors into reviews during the call.
func ReconcileReviews(reviews collection.Sequence[domain.Review], txs collection.Sequence[domain.Transaction]) domain.ReconciliationSummary {
	return reconcileReviews(reviews, txs, nil)
}

func reconcileReviews(reviews collection.Sequence[domain.Review], txs collection.Sequence[domain.Transaction], logger *slog.Logger) domain.ReconciliationSummary {
	summary := domain.ReconciliationSummary{TotalReviews: reviews.Len()}

	// Step 1: Count transactions per customer
	purchases := make(map[string]int)
	for c := txs.Front(); c.Valid(); c.Next() {
		purchases[c.Value().CustomerID]++
	}
	summary.Customers = len(purchases)

	// Step 2: Walk reviews in input order, keeping each customer's first N
	kept := make(map[string]int)
	for c := reviews.Front(); c.Valid(); {
		review := c.Value()
		if kept[review.CustomerID] < purchases[review.CustomerID] {
			kept[review.CustomerID]++
			summary.KeptReviews++
			c.Next()
			continue
		}

		if logger != nil {
			logger.Debug("dropping review without backing transaction",
				"customer_id", review.CustomerID,
				"product_id", review.ProductID,
				"transactions", purchases[review.CustomerID])
		}
		summary.DroppedReviews++
		c.Remove()
	}

	return summary
}
