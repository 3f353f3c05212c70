package main

import (
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/presenter"
	"purchase-insights/internal/search"
	"time"

	"github.com/spf13/cobra"
)

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var key, strategy string

	cmd := &cobra.Command{
		Use:   "search <value>",
		Short: "Print every transaction whose key equals value",
		Example: `  analyzer search 15/03/2024
  analyzer search --key category --strategy jump Electronics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := ordering.ParseKey(key)
			if err != nil {
				return err
			}
			if strategy == "" {
				strategy = opts.cfg.SearchStrategy
			}
			s, err := search.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			start := time.Now()
			found, err := opts.useCase().SearchTransactions(cmd.Context(), opts.cfg.TransactionsPath, k, s, args[0])
			if err != nil {
				return err
			}
			opts.logger.Info("search finished", "elapsed", time.Since(start))

			if opts.output == presenter.FormatJSON {
				return presenter.JSON(cmd.OutOrStdout(), found)
			}
			return presenter.SearchResult(cmd.OutOrStdout(), k.Name(), args[0], found)
		},
	}

	cmd.Flags().StringVar(&key, "key", string(ordering.KeyDate), "search key (date|category|price|payment_method)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy (linear|binary|interpolation|jump), defaults to config")
	return cmd
}
