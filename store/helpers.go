package store

var (
	_ Table[string, int] = (*MapTable[string, int])(nil)
	_ Resetter           = (*MapTable[string, int])(nil)
)

// MapTable is the default in-memory table: a Go map plus the order keys arrived in.
// It is not safe for concurrent use.
type MapTable[T comparable, V any] struct {
	entries map[T]V
	order   []T
}

func NewMapTable[T comparable, V any]() *MapTable[T, V] {
	return &MapTable[T, V]{entries: make(map[T]V)}
}

func (t *MapTable[T, V]) Load(k T) (v V, ok bool, err error) {
	v, ok = t.entries[k]
	return
}

func (t *MapTable[T, V]) InsertIfAbsent(k T, v V) (ok bool, err error) {
	if _, loaded := t.entries[k]; loaded {
		return false, nil
	}
	t.entries[k] = v
	t.order = append(t.order, k)
	return true, nil
}

func (t *MapTable[T, V]) Len() int {
	return len(t.entries)
}

func (t *MapTable[T, V]) Keys() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)
	return out
}

func (t *MapTable[T, V]) Reset() error {
	clear(t.entries)
	t.order = t.order[:0]
	return nil
}
