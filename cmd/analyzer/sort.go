package main

import (
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/presenter"
	"purchase-insights/internal/sorting"
	"time"

	"github.com/spf13/cobra"
)

func newSortCommand(opts *rootOptions) *cobra.Command {
	var key, algorithm string

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Print the transactions ordered by date, category, price or payment method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := ordering.ParseKey(key)
			if err != nil {
				return err
			}
			if algorithm == "" {
				algorithm = opts.cfg.SortAlgorithm
			}
			alg, err := sorting.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			start := time.Now()
			txs, err := opts.useCase().SortTransactions(cmd.Context(), opts.cfg.TransactionsPath, k, alg)
			if err != nil {
				return err
			}
			opts.logger.Info("sort finished", "elapsed", time.Since(start))

			if opts.output == presenter.FormatJSON {
				return presenter.JSON(cmd.OutOrStdout(), txs)
			}
			return presenter.Transactions(cmd.OutOrStdout(), txs)
		},
	}

	cmd.Flags().StringVar(&key, "key", string(ordering.KeyDate), "sort key (date|category|price|payment_method)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "sort algorithm (exchange|insertion|selection|merge), defaults to config")
	return cmd
}

func newSortReviewsCommand(opts *rootOptions) *cobra.Command {
	var key, algorithm string
	var descending bool

	cmd := &cobra.Command{
		Use:   "sort-reviews",
		Short: "Print the reviews ordered by text length or rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := ordering.ParseReviewKey(key)
			if err != nil {
				return err
			}
			if algorithm == "" {
				algorithm = opts.cfg.SortAlgorithm
			}
			alg, err := sorting.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			reviews, err := opts.useCase().SortReviews(cmd.Context(), opts.cfg.ReviewsPath, k, alg, descending)
			if err != nil {
				return err
			}

			if opts.output == presenter.FormatJSON {
				return presenter.JSON(cmd.OutOrStdout(), reviews)
			}
			return presenter.Reviews(cmd.OutOrStdout(), reviews)
		},
	}

	cmd.Flags().StringVar(&key, "key", string(ordering.ReviewKeyLength), "sort key (length|rating)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "sort algorithm (exchange|insertion|selection|merge), defaults to config")
	cmd.Flags().BoolVar(&descending, "desc", true, "sort descending")
	return cmd
}
