package collection

const nilHandle = -1

type chainNode[T any] struct {
	value T
	next  int
}

// Chain is a singly linked Sequence stored in an arena of nodes.
// Links are indexes into the arena rather than pointers, and freed slots are
// recycled by later appends.
type Chain[T any] struct {
	nodes    []chainNode[T]
	free     []int
	head     int
	tail     int
	length   int
	sortedBy string
}

// NewChain builds a Chain holding items in order.
func NewChain[T any](items []T) *Chain[T] {
	c := &Chain[T]{
		nodes: make([]chainNode[T], 0, len(items)),
		head:  nilHandle,
		tail:  nilHandle,
	}
	for _, v := range items {
		c.Append(v)
	}
	return c
}

func (c *Chain[T]) Len() int { return c.length }

// Append links v after the current tail in O(1).
func (c *Chain[T]) Append(v T) {
	node := chainNode[T]{value: v, next: nilHandle}

	var h int
	if n := len(c.free); n > 0 {
		h = c.free[n-1]
		c.free = c.free[:n-1]
		c.nodes[h] = node
	} else {
		h = len(c.nodes)
		c.nodes = append(c.nodes, node)
	}

	if c.tail == nilHandle {
		c.head = h
	} else {
		c.nodes[c.tail].next = h
	}
	c.tail = h
	c.length++
	c.sortedBy = ""
}

func (c *Chain[T]) SortedBy() string { return c.sortedBy }

func (c *Chain[T]) MarkSorted(ordering string) { c.sortedBy = ordering }

func (c *Chain[T]) Front() Cursor[T] {
	return &chainCursor[T]{chain: c, prev: nilHandle, cur: c.head}
}

type chainCursor[T any] struct {
	chain *Chain[T]
	prev  int
	cur   int
}

func (c *chainCursor[T]) Valid() bool { return c.cur != nilHandle }

func (c *chainCursor[T]) Value() T { return c.chain.nodes[c.cur].value }

func (c *chainCursor[T]) Set(v T) {
	c.chain.nodes[c.cur].value = v
	c.chain.sortedBy = ""
}

func (c *chainCursor[T]) Next() {
	c.prev = c.cur
	c.cur = c.chain.nodes[c.cur].next
}

// Remove splices the current node out in O(1) and advances to its successor.
// The predecessor stays the same.
func (c *chainCursor[T]) Remove() {
	ch := c.chain
	next := ch.nodes[c.cur].next

	if c.prev == nilHandle {
		ch.head = next
	} else {
		ch.nodes[c.prev].next = next
	}
	if ch.tail == c.cur {
		ch.tail = c.prev
	}

	ch.nodes[c.cur] = chainNode[T]{next: nilHandle}
	ch.free = append(ch.free, c.cur)
	ch.length--
	c.cur = next
}

func (c *chainCursor[T]) Clone() Cursor[T] {
	clone := *c
	return &clone
}
