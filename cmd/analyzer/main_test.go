package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const transactionsCSV = `customerID,product,category,price,date,paymentMethod
C1,Laptop,Electronics,999.99,15/03/2024,Credit Card
C1,Phone,Electronics,499.00,02/01/2024,Cash
C2,Novel,Books,12.50,20/02/2024,Credit Card
`

const reviewsCSV = `product_id,customer_id,rating,review
P1,C1,1,Bad battery
P2,C1,1,"bad, purchase"
P3,C1,1,bad again
P4,C2,5,Great
P5,C3,1,bad
`

func writeFixtures(t *testing.T) (dir string, args []string) {
	t.Helper()
	dir = t.TempDir()
	txPath := filepath.Join(dir, "transactions.csv")
	reviewPath := filepath.Join(dir, "reviews.csv")
	require.NoError(t, os.WriteFile(txPath, []byte(transactionsCSV), 0o644))
	require.NoError(t, os.WriteFile(reviewPath, []byte(reviewsCSV), 0o644))
	return dir, []string{"--transactions", txPath, "--reviews", reviewPath}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestReviewsCommand(t *testing.T) {
	dir, global := writeFixtures(t)
	exportPath := filepath.Join(dir, "filtered.csv")
	reportPath := filepath.Join(dir, "report.xlsx")

	out, err := execute(t, append(global, "reviews", "--export", exportPath, "--report", reportPath)...)
	require.NoError(t, err)
	assert.Equal(t, "Total Reviews (Raw): 5\n"+
		"Total Reviews (Filtered): 3\n"+
		"Filtered reviews saved to '"+exportPath+"'\n"+
		"\nWord Frequencies in 1-Star Reviews:\n"+
		"bad: 2\n"+
		"battery: 1\n"+
		"purchase: 1\n", out)

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, "product_id,customer_id,rating,review\n"+
		"P1,C1,1,\"Bad battery\"\n"+
		"P2,C1,1,\"bad, purchase\"\n"+
		"P4,C2,5,\"Great\"\n", string(exported))

	f, err := excelize.OpenFile(reportPath)
	require.NoError(t, err)
	defer f.Close()
	ranking, err := f.GetRows("Ranking")
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "2"}, ranking[1])
}

func TestReviewsCommand_InvalidRating(t *testing.T) {
	_, global := writeFixtures(t)
	_, err := execute(t, append(global, "reviews", "--rating", "7")...)
	assert.ErrorContains(t, err, "rating must be between 1 and 5")
}

func TestPaymentShareCommand(t *testing.T) {
	_, global := writeFixtures(t)

	out, err := execute(t, append(global, "payment-share")...)
	require.NoError(t, err)
	assert.Equal(t, "=== ELECTRONICS CATEGORY PAYMENT ANALYSIS ===\n"+
		"Total Electronics Transactions: 2\n"+
		"Electronics transactions paid via Credit Card: 1\n"+
		"Percentage of Electronics purchases made using Credit Card: 50.00%\n", out)

	out, err = execute(t, append(global, "--format", "json", "payment-share", "--category", "Books")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"category": "Books",
		"payment_method": "Credit Card",
		"total": 1,
		"matching": 1,
		"percentage": "100"
	}`, out)
}

func TestSearchCommand(t *testing.T) {
	_, global := writeFixtures(t)

	for _, strategy := range []string{"linear", "binary", "interpolation", "jump"} {
		t.Run(strategy, func(t *testing.T) {
			out, err := execute(t, append(global, "search", "--strategy", strategy, "15/03/2024")...)
			require.NoError(t, err)
			assert.Contains(t, out, "Customer ID: C1\nProduct: Laptop\n")
			assert.True(t, strings.HasSuffix(out, "Transactions found with date 15/03/2024: 1\n"), out)
		})
	}

	t.Run("no match", func(t *testing.T) {
		out, err := execute(t, append(global, "search", "--key", "category", "Toys")...)
		require.NoError(t, err)
		assert.Equal(t, "No transactions found with category Toys.\n", out)
	})

	t.Run("interpolation needs a numeric key", func(t *testing.T) {
		_, err := execute(t, append(global, "search", "--key", "category", "--strategy", "interpolation", "Books")...)
		assert.Error(t, err)
	})
}

func TestSortCommand(t *testing.T) {
	_, global := writeFixtures(t)

	for _, algorithm := range []string{"exchange", "insertion", "selection", "merge"} {
		t.Run(algorithm, func(t *testing.T) {
			out, err := execute(t, append(global, "sort", "--key", "price", "--algorithm", algorithm)...)
			require.NoError(t, err)

			novel := strings.Index(out, "Product: Novel")
			phone := strings.Index(out, "Product: Phone")
			laptop := strings.Index(out, "Product: Laptop")
			assert.True(t, novel < phone && phone < laptop, out)
			assert.True(t, strings.HasSuffix(out, "Total Transactions: 3\n"), out)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := execute(t, append(global, "sort", "--key", "weight")...)
		assert.Error(t, err)
	})
}

func TestSortReviewsCommand(t *testing.T) {
	_, global := writeFixtures(t)

	out, err := execute(t, append(global, "sort-reviews", "--key", "length")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Product ID: P2\n"), out)
	assert.True(t, strings.HasSuffix(out, "Total Reviews: 5\n"), out)
}

func TestConfigFile(t *testing.T) {
	dir, global := writeFixtures(t)

	t.Run("explicit config must exist", func(t *testing.T) {
		_, err := execute(t, append(global, "--config", filepath.Join(dir, "absent.yaml"), "payment-share")...)
		assert.Error(t, err)
	})

	t.Run("config selects category", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "analyzer.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("category: Books\npayment_method: Cash\n"), 0o644))

		out, err := execute(t, append(global, "--config", cfgPath, "payment-share")...)
		require.NoError(t, err)
		assert.Contains(t, out, "Books transactions paid via Cash: 0\n")
		assert.Contains(t, out, "Percentage of Books purchases made using Cash: 0.00%\n")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, append(global, "--format", "xml", "payment-share")...)
		assert.Error(t, err)
	})
}
