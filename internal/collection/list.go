package collection

// List is a contiguous Sequence backed by a slice.
type List[T any] struct {
	items    []T
	sortedBy string
}

// NewList creates a List that takes ownership of items.
func NewList[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

func (l *List[T]) Len() int { return len(l.items) }

// At returns the i-th element. It panics when i is out of range, like a slice index.
func (l *List[T]) At(i int) T { return l.items[i] }

// Append adds v at the end and clears any known ordering.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
	l.sortedBy = ""
}

// Slice returns a copy of the elements in [lo, hi).
func (l *List[T]) Slice(lo, hi int) []T {
	out := make([]T, hi-lo)
	copy(out, l.items[lo:hi])
	return out
}

// Items returns a copy of all elements.
func (l *List[T]) Items() []T {
	return l.Slice(0, len(l.items))
}

func (l *List[T]) SortedBy() string { return l.sortedBy }

func (l *List[T]) MarkSorted(ordering string) { l.sortedBy = ordering }

func (l *List[T]) Front() Cursor[T] {
	return &listCursor[T]{list: l}
}

type listCursor[T any] struct {
	list *List[T]
	pos  int
}

func (c *listCursor[T]) Valid() bool { return c.pos < len(c.list.items) }

func (c *listCursor[T]) Value() T { return c.list.items[c.pos] }

func (c *listCursor[T]) Set(v T) {
	c.list.items[c.pos] = v
	c.list.sortedBy = ""
}

func (c *listCursor[T]) Next() { c.pos++ }

// Remove shifts the tail left by one, so the cursor already points at the
// element that followed. This costs O(n) per removal.
func (c *listCursor[T]) Remove() {
	items := c.list.items
	copy(items[c.pos:], items[c.pos+1:])
	var zero T
	items[len(items)-1] = zero
	c.list.items = items[:len(items)-1]
}

func (c *listCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}
