package usecase

import (
	"context"
	"purchase-insights/internal/domain"
)

// RecordRepository defines the interface for fetching transaction and review data.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type RecordRepository interface {
	GetTransactions(ctx context.Context, path string) ([]domain.Transaction, error)
	GetReviews(ctx context.Context, path string) ([]domain.Review, error)
}

// ReviewExporter writes a reconciled review set back out.
type ReviewExporter interface {
	ExportReviews(ctx context.Context, path string, reviews []domain.Review) error
}

// ReportExporter writes analysis reports to a file.
type ReportExporter interface {
	ExportReviewReport(ctx context.Context, path string, report *domain.ReviewReport) error
	ExportPaymentShare(ctx context.Context, path string, share *domain.PaymentShare) error
}
