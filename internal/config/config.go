// Package config loads the analyzer settings from an optional YAML file.
//
// Every field has a default, so a missing file is not an error when the
// default path is used. Command line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"purchase-insights/internal/domain"
	"purchase-insights/internal/search"
	"purchase-insights/internal/sorting"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the analyzer settings.
type Config struct {
	// TransactionsPath is the transactions CSV file.
	TransactionsPath string `yaml:"transactions_path"`

	// ReviewsPath is the reviews CSV file.
	ReviewsPath string `yaml:"reviews_path"`

	// SortAlgorithm is one of exchange, insertion, selection, merge.
	SortAlgorithm string `yaml:"sort_algorithm"`

	// SearchStrategy is one of linear, binary, interpolation, jump.
	SearchStrategy string `yaml:"search_strategy"`

	// Category and PaymentMethod select the payment share report.
	Category      string `yaml:"category"`
	PaymentMethod string `yaml:"payment_method"`

	// Rating selects the reviews whose vocabulary is ranked.
	Rating int `yaml:"rating"`

	// FilteredReviewsPath, when set, receives the reconciled reviews as CSV.
	FilteredReviewsPath string `yaml:"filtered_reviews_path"`

	// ReportPath, when set, receives the report as an XLSX workbook.
	ReportPath string `yaml:"report_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TransactionsPath: "transactions.csv",
		ReviewsPath:      "reviews.csv",
		SortAlgorithm:    string(sorting.AlgorithmMerge),
		SearchStrategy:   string(search.StrategyBinary),
		Category:         "Electronics",
		PaymentMethod:    domain.PaymentMethodCreditCard,
		Rating:           1,
		LogLevel:         "info",
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the defaults. A missing file is an error only when
// required is true.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every enumerated setting holds a known value.
func (c *Config) Validate() error {
	if _, err := sorting.ParseAlgorithm(c.SortAlgorithm); err != nil {
		return fmt.Errorf("%w: sort_algorithm: %w", ErrInvalidConfig, err)
	}
	if _, err := search.ParseStrategy(c.SearchStrategy); err != nil {
		return fmt.Errorf("%w: search_strategy: %w", ErrInvalidConfig, err)
	}
	if c.Rating < 1 || c.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5, got %d", ErrInvalidConfig, c.Rating)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
