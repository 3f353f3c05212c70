package main

import (
	"purchase-insights/internal/presenter"

	"github.com/spf13/cobra"
)

func newPaymentShareCommand(opts *rootOptions) *cobra.Command {
	var category, method, reportPath string

	cmd := &cobra.Command{
		Use:   "payment-share",
		Short: "Report the share of a category's purchases paid with a payment method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("category") {
				category = opts.cfg.Category
			}
			if !cmd.Flags().Changed("method") {
				method = opts.cfg.PaymentMethod
			}
			if !cmd.Flags().Changed("report") {
				reportPath = opts.cfg.ReportPath
			}

			share, err := opts.useCase().PaymentShare(cmd.Context(), opts.cfg.TransactionsPath, category, method, reportPath)
			if err != nil {
				return err
			}

			if opts.output == presenter.FormatJSON {
				return presenter.JSON(cmd.OutOrStdout(), share)
			}
			return presenter.PaymentShare(cmd.OutOrStdout(), share)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category to analyse, defaults to config")
	cmd.Flags().StringVar(&method, "method", "", "payment method to count, defaults to config")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the result to this XLSX file")
	return cmd
}
