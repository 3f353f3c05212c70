// Package collection provides the two ordered collection representations the
// engines operate on: a contiguous List with O(1) random access and a Chain
// with O(1) removal of the element under a cursor.
//
// Both implement Sequence, so sorting and scanning code is written once.
// Only List implements Indexed, which the ordered search strategies require.
package collection

// Cursor is a forward position inside a Sequence.
//
// A cursor owns its collection while it is in use: removing through one cursor
// invalidates every other cursor of the same collection.
type Cursor[T any] interface {
	// Valid reports whether the cursor points at an element.
	Valid() bool
	// Value returns the element under the cursor.
	Value() T
	// Set replaces the element under the cursor.
	Set(v T)
	// Next advances to the following element.
	Next()
	// Remove deletes the element under the cursor and advances to the element
	// that followed it, so a scan never skips or revisits elements.
	Remove()
	// Clone returns an independent cursor at the same position.
	Clone() Cursor[T]
}

// Sequence is the capability shared by every representation.
type Sequence[T any] interface {
	Len() int
	Front() Cursor[T]
	// SortedBy returns the name of the ordering the sequence is known to
	// satisfy, or "" when no ordering is known.
	SortedBy() string
	// MarkSorted records that the sequence is ordered by the named ordering.
	// Any later Set or append clears the mark; removals keep it.
	MarkSorted(ordering string)
}

// Indexed is a Sequence with constant time positional access.
type Indexed[T any] interface {
	Sequence[T]
	At(i int) T
}

// Values copies the elements of any sequence into a new slice, in order.
func Values[T any](seq Sequence[T]) []T {
	out := make([]T, 0, seq.Len())
	for c := seq.Front(); c.Valid(); c.Next() {
		out = append(out, c.Value())
	}
	return out
}
