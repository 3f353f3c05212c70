// Package ordering holds the comparator strategies used by the sort and search engines.
package ordering

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a key name does not select any ordering.
var ErrUnknownKey = errors.New("unknown ordering key")

// Comparator is a named three-way comparison.
// Compare returns a negative number when a orders before b, zero when they
// tie and a positive number otherwise.
type Comparator[T any] interface {
	Name() string
	Compare(a, b T) int
}

// Numeric is a Comparator whose key maps monotonically onto a number.
// Interpolation search requires it.
type Numeric[T any] interface {
	Comparator[T]
	Scalar(v T) (float64, bool)
}

type funcComparator[T any] struct {
	name string
	fn   func(a, b T) int
}

func (f funcComparator[T]) Name() string       { return f.name }
func (f funcComparator[T]) Compare(a, b T) int { return f.fn(a, b) }

// Func adapts a plain comparison function into a named Comparator.
func Func[T any](name string, fn func(a, b T) int) Comparator[T] {
	return funcComparator[T]{name: name, fn: fn}
}

// Reverse returns a Comparator with the opposite order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return Func(fmt.Sprintf("-%s", c.Name()), func(a, b T) int {
		return c.Compare(b, a)
	})
}
