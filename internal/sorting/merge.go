package sorting

import (
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
)

// Merge sorts seq with an iterative bottom-up merge sort: runs of width 1, 2,
// 4, ... are merged pairwise between two buffers until one run covers the
// whole input, then the result is written back through a cursor.
// Ties keep their input order.
func Merge[T any](seq collection.Sequence[T], cmp ordering.Comparator[T]) {
	src := collection.Values(seq)
	n := len(src)
	if n < 2 {
		return
	}
	dst := make([]T, n)

	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRuns(dst, src, lo, mid, hi, cmp)
		}
		src, dst = dst, src
	}

	i := 0
	for c := seq.Front(); c.Valid(); c.Next() {
		c.Set(src[i])
		i++
	}
}

// mergeRuns merges src[lo:mid] and src[mid:hi] into dst[lo:hi].
func mergeRuns[T any](dst, src []T, lo, mid, hi int, cmp ordering.Comparator[T]) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if cmp.Compare(src[j], src[i]) < 0 {
			dst[k] = src[j]
			j++
		} else {
			dst[k] = src[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
