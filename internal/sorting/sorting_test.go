package sorting_test

import (
	"fmt"
	"math/rand"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/domain"
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/sorting"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	categories = []string{"Books", "Electronics", "Fashion", "Home", "Toys", "books"}
	methods    = []string{"Cash", "Credit Card", "Debit Card", "PayPal"}
)

// randomTransactions builds n transactions with unique customer ids and many
// duplicate keys, so ties are exercised for every key.
func randomTransactions(seed int64, n int) []domain.Transaction {
	rng := rand.New(rand.NewSource(seed))
	txs := make([]domain.Transaction, n)
	for i := range txs {
		txs[i] = domain.Transaction{
			CustomerID:    fmt.Sprintf("C%04d", i),
			Product:       fmt.Sprintf("P%d", rng.Intn(20)),
			Category:      categories[rng.Intn(len(categories))],
			Price:         decimal.New(int64(rng.Intn(5000)), -2),
			Date:          domain.NewDate(2023+rng.Intn(2), time.Month(1+rng.Intn(12)), 1+rng.Intn(28)),
			PaymentMethod: methods[rng.Intn(len(methods))],
		}
	}
	return txs
}

type representation struct {
	name  string
	build func([]domain.Transaction) collection.Sequence[domain.Transaction]
}

var representations = []representation{
	{name: "list", build: func(txs []domain.Transaction) collection.Sequence[domain.Transaction] {
		return collection.NewList(slices.Clone(txs))
	}},
	{name: "chain", build: func(txs []domain.Transaction) collection.Sequence[domain.Transaction] {
		return collection.NewChain(txs)
	}},
}

func TestSort_ProducesOrderedPermutation(t *testing.T) {
	inputs := map[string][]domain.Transaction{
		"random":    randomTransactions(1, 200),
		"duplicate": randomTransactions(2, 40),
		"empty":     nil,
		"single":    randomTransactions(3, 1),
		"pair":      randomTransactions(4, 2),
	}

	for inputName, input := range inputs {
		for _, rep := range representations {
			for _, key := range ordering.Keys {
				for _, alg := range sorting.Algorithms {
					name := fmt.Sprintf("%s/%s/%s/%s", inputName, rep.name, key, alg)
					t.Run(name, func(t *testing.T) {
						seq := rep.build(input)
						require.NoError(t, sorting.Sort[domain.Transaction](seq, key, alg))

						got := collection.Values(seq)
						assert.Len(t, got, len(input))
						assert.ElementsMatch(t, input, got)
						assert.True(t, sorting.IsSorted[domain.Transaction](seq, key))
						assert.Equal(t, key.Name(), seq.SortedBy())
					})
				}
			}
		}
	}
}

func TestSort_AlgorithmsAgreeModuloTies(t *testing.T) {
	input := randomTransactions(7, 150)

	for _, key := range ordering.Keys {
		t.Run(string(key), func(t *testing.T) {
			reference := collection.NewList(slices.Clone(input))
			sorting.Merge[domain.Transaction](reference, key)

			for _, rep := range representations {
				for _, alg := range sorting.Algorithms {
					seq := rep.build(input)
					require.NoError(t, sorting.Sort[domain.Transaction](seq, key, alg))

					got := collection.Values(seq)
					for i := range got {
						assert.Zero(t, key.Compare(reference.At(i), got[i]),
							"%s/%s differs from merge at %d", rep.name, alg, i)
					}
				}
			}
		})
	}
}

func TestMerge_IsStable(t *testing.T) {
	input := randomTransactions(11, 120)

	want := slices.Clone(input)
	slices.SortStableFunc(want, ordering.KeyCategory.Compare)

	for _, rep := range representations {
		t.Run(rep.name, func(t *testing.T) {
			seq := rep.build(input)
			sorting.Merge[domain.Transaction](seq, ordering.KeyCategory)
			assert.Equal(t, want, collection.Values(seq))
		})
	}
}

func TestInsertion_IsStable(t *testing.T) {
	input := randomTransactions(12, 80)

	want := slices.Clone(input)
	slices.SortStableFunc(want, ordering.KeyDate.Compare)

	seq := collection.NewChain(input)
	sorting.Insertion[domain.Transaction](seq, ordering.KeyDate)
	assert.Equal(t, want, collection.Values[domain.Transaction](seq))
}

func TestSort_ReverseOrdering(t *testing.T) {
	desc := ordering.Reverse[domain.Transaction](ordering.KeyPrice)

	for _, alg := range sorting.Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			seq := collection.NewList(randomTransactions(5, 60))
			require.NoError(t, sorting.Sort(seq, desc, alg))

			got := seq.Items()
			for i := 1; i < len(got); i++ {
				assert.True(t, got[i-1].Price.GreaterThanOrEqual(got[i].Price))
			}
			assert.Equal(t, "-price", seq.SortedBy())
		})
	}
}

func TestSort_UnknownAlgorithm(t *testing.T) {
	seq := collection.NewList(randomTransactions(6, 3))
	err := sorting.Sort[domain.Transaction](seq, ordering.KeyDate, sorting.Algorithm("quick"))
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.Equal(t, "", seq.SortedBy())
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    sorting.Algorithm
		wantErr bool
	}{
		{input: "exchange", want: sorting.AlgorithmExchange},
		{input: "Bubble", want: sorting.AlgorithmExchange},
		{input: " insertion ", want: sorting.AlgorithmInsertion},
		{input: "selection", want: sorting.AlgorithmSelection},
		{input: "MERGE", want: sorting.AlgorithmMerge},
		{input: "heap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := sorting.ParseAlgorithm(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// countingComparator counts comparisons to check best-case behaviour.
type countingComparator struct {
	ordering.Comparator[domain.Transaction]
	calls int
}

func (c *countingComparator) Compare(a, b domain.Transaction) int {
	c.calls++
	return c.Comparator.Compare(a, b)
}

func TestSort_LinearBestCaseOnSortedInput(t *testing.T) {
	const n = 500
	input := randomTransactions(9, n)
	slices.SortStableFunc(input, ordering.KeyDate.Compare)

	for _, alg := range []sorting.Algorithm{sorting.AlgorithmExchange, sorting.AlgorithmInsertion} {
		t.Run(string(alg), func(t *testing.T) {
			cmp := &countingComparator{Comparator: ordering.KeyDate}
			require.NoError(t, sorting.Sort[domain.Transaction](collection.NewList(slices.Clone(input)), cmp, alg))
			assert.Equal(t, n-1, cmp.calls)
		})
	}
}

func BenchmarkSort(b *testing.B) {
	input := randomTransactions(42, 1000)

	for _, alg := range sorting.Algorithms {
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				seq := collection.NewList(slices.Clone(input))
				if err := sorting.Sort[domain.Transaction](seq, ordering.KeyDate, alg); err != nil {
					b.Fatalf("Error in benchmark: %v", err)
				}
			}
		})
	}
}
