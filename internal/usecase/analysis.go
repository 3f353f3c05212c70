package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/domain"
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/search"
	"purchase-insights/internal/sorting"

	"github.com/google/uuid"
)

// AnalysisUseCase orchestrates loading, ordering, searching and review analysis.
type AnalysisUseCase struct {
	repo     RecordRepository
	reviews  ReviewExporter
	reports  ReportExporter
	logger   *slog.Logger
	newRunID func() string
}

// NewAnalysisUseCase creates a new instance of the usecase.
// Exporters may be nil when no file output is wanted; a nil logger uses slog.Default().
func NewAnalysisUseCase(repo RecordRepository, reviews ReviewExporter, reports ReportExporter, logger *slog.Logger) *AnalysisUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisUseCase{
		repo:     repo,
		reviews:  reviews,
		reports:  reports,
		logger:   logger,
		newRunID: newRunID,
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ReviewAnalysisRequest describes one review analysis run.
type ReviewAnalysisRequest struct {
	TransactionsPath    string
	ReviewsPath         string
	Rating              int
	FilteredReviewsPath string // Optional CSV export of the reconciled reviews
	ReportPath          string // Optional XLSX export of the report
}

// SortTransactions loads the transactions and returns them ordered by key.
func (uc *AnalysisUseCase) SortTransactions(ctx context.Context, path string, key ordering.Key, alg sorting.Algorithm) ([]domain.Transaction, error) {
	txs, err := uc.loadTransactions(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := sorting.Sort[domain.Transaction](txs, key, alg); err != nil {
		return nil, fmt.Errorf("could not sort transactions: %w", err)
	}
	uc.logger.Info("transactions sorted", "key", key, "algorithm", alg, "count", txs.Len())
	return txs.Items(), nil
}

// SearchTransactions loads the transactions and returns every one whose key
// equals target. Ordered strategies get the collection merge-sorted by key
// first, since they are only correct on sorted input.
func (uc *AnalysisUseCase) SearchTransactions(ctx context.Context, path string, key ordering.Key, strategy search.Strategy, target string) ([]domain.Transaction, error) {
	probe, err := key.Target(target)
	if err != nil {
		return nil, fmt.Errorf("invalid search target: %w", err)
	}

	txs, err := uc.loadTransactions(ctx, path)
	if err != nil {
		return nil, err
	}

	if strategy.RequiresOrder() {
		if err := sorting.Sort[domain.Transaction](txs, key, sorting.AlgorithmMerge); err != nil {
			return nil, fmt.Errorf("could not sort transactions: %w", err)
		}
	}

	found, err := search.Find[domain.Transaction](txs, strategy, key, probe)
	if err != nil {
		return nil, fmt.Errorf("could not search transactions: %w", err)
	}
	uc.logger.Info("transactions searched", "key", key, "strategy", strategy, "target", target, "found", len(found))
	return found, nil
}

// PaymentShare computes the share of a category's purchases paid with method,
// and exports it when reportPath is set.
func (uc *AnalysisUseCase) PaymentShare(ctx context.Context, path, category, method, reportPath string) (*domain.PaymentShare, error) {
	txs, err := uc.loadTransactions(ctx, path)
	if err != nil {
		return nil, err
	}

	share, err := ComputePaymentShare(txs, category, method)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("payment share computed",
		"category", category,
		"payment_method", method,
		"total", share.Total,
		"matching", share.Matching)

	if reportPath != "" && uc.reports != nil {
		if err := uc.reports.ExportPaymentShare(ctx, reportPath, &share); err != nil {
			return nil, fmt.Errorf("could not export payment share: %w", err)
		}
	}
	return &share, nil
}

// AnalyzeReviews reconciles the reviews against the transactions and ranks
// the vocabulary of the surviving reviews with the requested rating.
func (uc *AnalysisUseCase) AnalyzeReviews(ctx context.Context, req ReviewAnalysisRequest) (*domain.ReviewReport, error) {
	// Step 1: Data Ingestion
	txs, err := uc.loadTransactions(ctx, req.TransactionsPath)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.loadReviews(ctx, req.ReviewsPath)
	if err != nil {
		return nil, err
	}

	report := &domain.ReviewReport{
		RunID:  uc.newRunID(),
		Rating: req.Rating,
	}
	logger := uc.logger.With("run_id", report.RunID)

	// Step 2: Reconciliation
	report.Reconciliation = reconcileReviews(reviews, txs, logger)
	logger.Info("reviews reconciled",
		"total", report.Reconciliation.TotalReviews,
		"kept", report.Reconciliation.KeptReviews,
		"dropped", report.Reconciliation.DroppedReviews)

	if req.FilteredReviewsPath != "" && uc.reviews != nil {
		if err := uc.reviews.ExportReviews(ctx, req.FilteredReviewsPath, collection.Values[domain.Review](reviews)); err != nil {
			return nil, fmt.Errorf("could not export filtered reviews: %w", err)
		}
		report.ExportedTo = req.FilteredReviewsPath
	}

	// Step 3: Aggregation
	report.Ranking = RankWords(reviews, req.Rating)
	logger.Info("review vocabulary ranked", "rating", req.Rating, "distinct_words", len(report.Ranking))

	if req.ReportPath != "" && uc.reports != nil {
		if err := uc.reports.ExportReviewReport(ctx, req.ReportPath, report); err != nil {
			return nil, fmt.Errorf("could not export review report: %w", err)
		}
	}
	return report, nil
}

// SortReviews loads the reviews into a chain and orders them by key,
// descending when asked.
func (uc *AnalysisUseCase) SortReviews(ctx context.Context, path string, key ordering.ReviewKey, alg sorting.Algorithm, descending bool) ([]domain.Review, error) {
	reviews, err := uc.loadReviews(ctx, path)
	if err != nil {
		return nil, err
	}

	var cmp ordering.Comparator[domain.Review] = key
	if descending {
		cmp = ordering.Reverse(cmp)
	}
	if err := sorting.Sort(reviews, cmp, alg); err != nil {
		return nil, fmt.Errorf("could not sort reviews: %w", err)
	}
	return collection.Values[domain.Review](reviews), nil
}

func (uc *AnalysisUseCase) loadTransactions(ctx context.Context, path string) (*collection.List[domain.Transaction], error) {
	txs, err := uc.repo.GetTransactions(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	uc.logger.Debug("transactions loaded", "path", path, "count", len(txs))
	return collection.NewList(txs), nil
}

func (uc *AnalysisUseCase) loadReviews(ctx context.Context, path string) (*collection.Chain[domain.Review], error) {
	reviews, err := uc.repo.GetReviews(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get reviews: %w", err)
	}
	uc.logger.Debug("reviews loaded", "path", path, "count", len(reviews))
	return collection.NewChain(reviews), nil
}
