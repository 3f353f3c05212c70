package sorting

import (
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
)

// Exchange sorts by adjacent swaps. Each pass bubbles the largest remaining
// element to the end of the unsorted region; a pass without swaps stops the
// sort, which makes already sorted input O(n).
func Exchange[T any](seq collection.Sequence[T], cmp ordering.Comparator[T]) {
	unsorted := seq.Len()
	for swapped := true; swapped && unsorted > 1; unsorted-- {
		swapped = false
		a := seq.Front()
		b := a.Clone()
		b.Next()
		for i := 1; i < unsorted; i++ {
			if cmp.Compare(a.Value(), b.Value()) > 0 {
				swap(a, b)
				swapped = true
			}
			a.Next()
			b.Next()
		}
	}
}

// Insertion grows a sorted prefix. Each new element that is smaller than its
// predecessor is re-placed at the first prefix position holding a strictly
// greater element, shifting the rest of the prefix right by one.
func Insertion[T any](seq collection.Sequence[T], cmp ordering.Comparator[T]) {
	prev := seq.Front()
	if !prev.Valid() {
		return
	}
	cur := prev.Clone()
	cur.Next()

	for i := 1; cur.Valid(); i++ {
		v := cur.Value()
		if cmp.Compare(prev.Value(), v) > 0 {
			// Find the insertion point in [0, i).
			p := seq.Front()
			pos := 0
			for cmp.Compare(p.Value(), v) <= 0 {
				p.Next()
				pos++
			}

			// Carry v through positions pos..i.
			carry := v
			for ; pos <= i; pos++ {
				next := p.Value()
				p.Set(carry)
				carry = next
				p.Next()
			}
		}
		prev.Next()
		cur.Next()
	}
}

// Selection swaps the minimum of the unsorted suffix into place, one position
// at a time. It always does O(n^2) comparisons but at most n-1 swaps.
func Selection[T any](seq collection.Sequence[T], cmp ordering.Comparator[T]) {
	for i := seq.Front(); i.Valid(); i.Next() {
		least := i.Clone()
		j := i.Clone()
		for j.Next(); j.Valid(); j.Next() {
			if cmp.Compare(j.Value(), least.Value()) < 0 {
				least = j.Clone()
			}
		}
		if cmp.Compare(least.Value(), i.Value()) != 0 {
			swap(i, least)
		}
	}
}
