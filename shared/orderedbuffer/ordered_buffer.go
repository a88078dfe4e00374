package orderedbuffer

import (
	"sort"
)

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps at most maxBufLen values sorted by compare.
// Inserting past the bound evicts the smallest value and hands it back to the caller.
type OrderedBoundedBuffer[T any] struct {
	data      []T
	maxBufLen int
	compare   CompareFunc[T]
}

func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	if maxBufLen <= 0 {
		panic("maxBufLen should be greater than 0")
	}
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen),
		maxBufLen: maxBufLen,
		compare:   cmp,
	}
}

// Insert places val in order. When the buffer overflows, the head is evicted
// and returned with evicted == true.
func (b *OrderedBoundedBuffer[T]) Insert(val T) (head T, evicted bool) {
	// stable: equal values keep arrival order
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})

	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	if len(b.data) > b.maxBufLen {
		head = b.data[0]
		b.data = b.data[1:]
		return head, true
	}
	return head, false
}

// Snapshot returns a copy of the buffered values in order.
func (b *OrderedBoundedBuffer[T]) Snapshot() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

func (b *OrderedBoundedBuffer[T]) Len() int {
	return len(b.data)
}

// Clear drops every buffered value and keeps the bound.
func (b *OrderedBoundedBuffer[T]) Clear() {
	b.data = b.data[:0]
}
