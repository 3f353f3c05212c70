// Package search locates records in a collection by key.
//
// Linear works on any sequence. Binary, interpolation and jump search assume
// the collection is sorted ascending by the comparator they are given; Find
// checks the collection's sorted-by mark and refuses to run them otherwise.
// A miss is an empty result, never an error.
package search

import (
	"errors"
	"fmt"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
	"strings"
)

var (
	// ErrUnsorted is returned when an ordered strategy is asked to search a
	// collection that is not known to be sorted by the same comparator.
	ErrUnsorted = errors.New("collection is not sorted by the search key")
	// ErrNotInterpolable is returned when interpolation search is used with a
	// key that has no numeric projection.
	ErrNotInterpolable = errors.New("search key is not numeric")
	// ErrUnknownStrategy is returned when a strategy name is not recognised.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// NotFound is the index returned by the single-hit strategies on a miss.
const NotFound = -1

// Strategy names a search algorithm.
type Strategy string

const (
	StrategyLinear        Strategy = "linear"
	StrategyBinary        Strategy = "binary"
	StrategyInterpolation Strategy = "interpolation"
	StrategyJump          Strategy = "jump"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyLinear, StrategyBinary, StrategyInterpolation, StrategyJump}

// ParseStrategy resolves a strategy by name.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Strategies {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// RequiresOrder reports whether the strategy is only correct on sorted input.
func (s Strategy) RequiresOrder() bool {
	return s != StrategyLinear
}

// Find returns every element of list whose key equals target's key under cmp.
// The result keeps the list order and is empty when nothing matches.
func Find[T any](list collection.Indexed[T], s Strategy, cmp ordering.Comparator[T], target T) ([]T, error) {
	if s == StrategyLinear {
		return Linear(list, cmp, target), nil
	}

	if list.SortedBy() != cmp.Name() {
		return nil, fmt.Errorf("%s search by %s: %w", s, cmp.Name(), ErrUnsorted)
	}

	var hit int
	switch s {
	case StrategyBinary:
		hit = Binary(list, cmp, target)
	case StrategyJump:
		hit = Jump(list, cmp, target)
	case StrategyInterpolation:
		num, ok := cmp.(ordering.Numeric[T])
		if !ok {
			return nil, fmt.Errorf("interpolation search by %s: %w", cmp.Name(), ErrNotInterpolable)
		}
		var err error
		if hit, err = Interpolation(list, num, target); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}

	if hit == NotFound {
		return nil, nil
	}
	lo, hi := Expand(list, cmp, target, hit)
	out := make([]T, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, list.At(i))
	}
	return out, nil
}

// Expand widens a hit to the contiguous run of elements equal to target and
// returns it as the half-open range [lo, hi).
func Expand[T any](list collection.Indexed[T], cmp ordering.Comparator[T], target T, hit int) (lo, hi int) {
	lo, hi = hit, hit+1
	for lo > 0 && cmp.Compare(list.At(lo-1), target) == 0 {
		lo--
	}
	for hi < list.Len() && cmp.Compare(list.At(hi), target) == 0 {
		hi++
	}
	return lo, hi
}
