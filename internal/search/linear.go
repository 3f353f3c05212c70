package search

import (
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
)

// Linear scans seq front to back and collects every match. It has no
// precondition. When seq is marked sorted by cmp, equal keys are adjacent and
// the scan stops at the first element past the run.
func Linear[T any](seq collection.Sequence[T], cmp ordering.Comparator[T], target T) []T {
	sorted := seq.SortedBy() == cmp.Name()

	var out []T
	for c := seq.Front(); c.Valid(); c.Next() {
		switch d := cmp.Compare(c.Value(), target); {
		case d == 0:
			out = append(out, c.Value())
		case sorted && d > 0:
			return out
		}
	}
	return out
}
