package main

import (
	"fmt"
	"purchase-insights/internal/presenter"
	"purchase-insights/internal/usecase"

	"github.com/spf13/cobra"
)

func newReviewsCommand(opts *rootOptions) *cobra.Command {
	var rating int
	var exportPath, reportPath string

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Drop reviews not backed by purchases and rank the words of the remaining ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rating") {
				rating = opts.cfg.Rating
			}
			if rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be between 1 and 5, got %d", rating)
			}
			if !cmd.Flags().Changed("export") {
				exportPath = opts.cfg.FilteredReviewsPath
			}
			if !cmd.Flags().Changed("report") {
				reportPath = opts.cfg.ReportPath
			}

			report, err := opts.useCase().AnalyzeReviews(cmd.Context(), usecase.ReviewAnalysisRequest{
				TransactionsPath:    opts.cfg.TransactionsPath,
				ReviewsPath:         opts.cfg.ReviewsPath,
				Rating:              rating,
				FilteredReviewsPath: exportPath,
				ReportPath:          reportPath,
			})
			if err != nil {
				return err
			}

			if opts.output == presenter.FormatJSON {
				return presenter.JSON(cmd.OutOrStdout(), report)
			}
			return presenter.ReviewReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().IntVar(&rating, "rating", usecase.LowestRating, "rating whose reviews are ranked, defaults to config")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the reconciled reviews to this CSV file")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the report to this XLSX file")
	return cmd
}
