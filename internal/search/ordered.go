package search

import (
	"math"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/ordering"
)

// Binary returns the index of some element equal to target, or NotFound.
// list must be sorted ascending by cmp.
func Binary[T any](list collection.Indexed[T], cmp ordering.Comparator[T], target T) int {
	lo, hi := 0, list.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch d := cmp.Compare(list.At(mid), target); {
		case d == 0:
			return mid
		case d < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}

// Interpolation probes at the position proportional to target's place between
// the smallest and largest key of the current range. It degrades towards a
// linear walk on skewed keys, and a zero-width key range probes from the low
// end. list must be sorted ascending by cmp. Every probe is clamped into the
// current range, which shrinks on each iteration.
func Interpolation[T any](list collection.Indexed[T], cmp ordering.Numeric[T], target T) (int, error) {
	tv, ok := cmp.Scalar(target)
	if !ok {
		return NotFound, ErrNotInterpolable
	}

	lo, hi := 0, list.Len()-1
	for lo <= hi {
		lv, _ := cmp.Scalar(list.At(lo))
		hv, _ := cmp.Scalar(list.At(hi))
		if tv < lv || tv > hv {
			return NotFound, nil
		}

		pos := lo
		if hv > lv {
			pos = lo + int(float64(hi-lo)*(tv-lv)/(hv-lv))
		}
		pos = max(lo, min(pos, hi))

		switch d := cmp.Compare(list.At(pos), target); {
		case d == 0:
			return pos, nil
		case d < 0:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}
	return NotFound, nil
}

// Jump checks the last element of each block of ceil(sqrt(n)) elements until
// it finds a block that may hold target, then scans that block linearly.
// list must be sorted ascending by cmp.
func Jump[T any](list collection.Indexed[T], cmp ordering.Comparator[T], target T) int {
	n := list.Len()
	if n == 0 {
		return NotFound
	}
	step := int(math.Ceil(math.Sqrt(float64(n))))

	prev, next := 0, step
	for cmp.Compare(list.At(min(next, n)-1), target) < 0 {
		prev = next
		if prev >= n {
			return NotFound
		}
		next += step
	}

	for i := prev; i < min(next, n); i++ {
		switch d := cmp.Compare(list.At(i), target); {
		case d == 0:
			return i
		case d > 0:
			return NotFound
		}
	}
	return NotFound
}
