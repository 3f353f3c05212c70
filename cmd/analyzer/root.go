package main

import (
	"log/slog"
	"purchase-insights/internal/config"
	"purchase-insights/internal/gateway"
	"purchase-insights/internal/presenter"
	"purchase-insights/internal/usecase"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "analyzer.yaml"

// rootOptions holds global flags and the state shared by all subcommands.
type rootOptions struct {
	verbose          bool
	format           string
	configPath       string
	transactionsPath string
	reviewsPath      string

	cfg    *config.Config
	output presenter.Format
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Purchase and review analyzer",
		Long: `Analyzer loads purchase transactions and product reviews from CSV and answers:
  - which transactions fall on a date, category or price, in sorted order
  - what share of a category's purchases used a payment method
  - which words dominate the lowest-rated reviews backed by real purchases`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "path to the YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.transactionsPath, "transactions", "", "transactions CSV file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.reviewsPath, "reviews", "", "reviews CSV file (overrides config)")

	// Add subcommands
	cmd.AddCommand(newSortCommand(opts))
	cmd.AddCommand(newSortReviewsCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newPaymentShareCommand(opts))
	cmd.AddCommand(newReviewsCommand(opts))

	return cmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	format, err := presenter.ParseFormat(o.format)
	if err != nil {
		return err
	}
	o.output = format

	cfg, err := config.Load(o.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if o.transactionsPath != "" {
		cfg.TransactionsPath = o.transactionsPath
	}
	if o.reviewsPath != "" {
		cfg.ReviewsPath = o.reviewsPath
	}
	o.cfg = cfg

	level := logLevel(cfg.LogLevel)
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)
	return nil
}

func (o *rootOptions) useCase() *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(
		gateway.NewCSVRecordRepository(o.logger),
		gateway.NewCSVReviewExporter(),
		gateway.NewXLSXReportExporter(),
		o.logger,
	)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
