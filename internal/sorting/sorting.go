// Package sorting implements the four interchangeable sort algorithms over any
// collection.Sequence. All of them reorder the sequence in place.
package sorting

import (
	"errors"
	"fmt"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm names a sort strategy.
type Algorithm string

const (
	// AlgorithmExchange repeats adjacent-swap passes until a pass makes no swap.
	AlgorithmExchange Algorithm = "exchange"
	// AlgorithmInsertion grows a sorted prefix one element at a time.
	AlgorithmInsertion Algorithm = "insertion"
	// AlgorithmSelection repeatedly moves the minimum of the unsorted suffix forward.
	AlgorithmSelection Algorithm = "selection"
	// AlgorithmMerge is a bottom-up merge sort. It is the only stable algorithm.
	AlgorithmMerge Algorithm = "merge"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{AlgorithmExchange, AlgorithmInsertion, AlgorithmSelection, AlgorithmMerge}

// ParseAlgorithm resolves an algorithm by name. "bubble" is accepted as an
// alias for exchange.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exchange", "bubble":
		return AlgorithmExchange, nil
	case "insertion":
		return AlgorithmInsertion, nil
	case "selection":
		return AlgorithmSelection, nil
	case "merge":
		return AlgorithmMerge, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Sort orders seq ascending under cmp using the chosen algorithm and marks the
// sequence as sorted by cmp. Empty and single element sequences are left as is.
func Sort[T any](seq collection.Sequence[T], cmp ordering.Comparator[T], alg Algorithm) error {
	switch alg {
	case AlgorithmExchange:
		Exchange(seq, cmp)
	case AlgorithmInsertion:
		Insertion(seq, cmp)
	case AlgorithmSelection:
		Selection(seq, cmp)
	case AlgorithmMerge:
		Merge(seq, cmp)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	seq.MarkSorted(cmp.Name())
	return nil
}

// IsSorted reports whether seq is non-decreasing under cmp.
func IsSorted[T any](seq collection.Sequence[T], cmp ordering.Comparator[T]) bool {
	prev := seq.Front()
	if !prev.Valid() {
		return true
	}
	cur := prev.Clone()
	for cur.Next(); cur.Valid(); cur.Next() {
		if cmp.Compare(prev.Value(), cur.Value()) > 0 {
			return false
		}
		prev.Next()
	}
	return true
}

func swap[T any](a, b collection.Cursor[T]) {
	av, bv := a.Value(), b.Value()
	a.Set(bv)
	b.Set(av)
}
