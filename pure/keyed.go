package pure

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/memo_ive_go/store"
)

var _ Memoizer[string, string] = (*Keyed[string, string, string])(nil)

var ErrNotResettable = errors.New("table does not support reset")

// Keyed remembers the result of every distinct key it has seen. The table
// only grows: there is no eviction, so callers that need bounded memory must
// Reset or drop the memoizer themselves.
//
// K is the caller's key, T the comparable table key derived from it.
// A Keyed is not safe for concurrent use.
type Keyed[K any, T comparable, V any] struct {
	base
	fn    Func[K, V]
	keyOf KeyFunc[K, T]
	table store.Table[T, V]
}

// NewKeyed memoizes fn in a table indexed by the key itself.
func NewKeyed[K comparable, V any](fn Func[K, V], opts ...Option) *Keyed[K, K, V] {
	return NewKeyedBy(fn, IdentityKey[K](), opts...)
}

// NewKeyedBy memoizes fn in a table indexed by keyOf(key).
// It panics when the configured backend cannot be opened.
func NewKeyedBy[K any, T comparable, V any](fn Func[K, V], keyOf KeyFunc[K, T], opts ...Option) *Keyed[K, T, V] {
	mustFn(fn)
	if keyOf == nil {
		panic("keyOf should not be nil")
	}
	s := newSettings(opts)
	table, err := store.Open[T, V](s.backend)
	if err != nil {
		panic(fmt.Errorf("open memo table: %w", err))
	}
	return &Keyed[K, T, V]{
		base:  newBase(KindKeyed, s),
		fn:    fn,
		keyOf: keyOf,
		table: table,
	}
}

// Call returns the stored value for key, computing and storing it on first
// use. Failures are returned unchanged and leave key absent, so the next call
// with the same key invokes fn again.
func (m *Keyed[K, T, V]) Call(key K) (V, error) {
	var zero V

	tk, err := m.keyOf(key)
	if err != nil {
		m.emit(EventFailure, key, err)
		return zero, err
	}

	v, ok, err := m.table.Load(tk)
	if err != nil {
		m.emit(EventFailure, key, err)
		return zero, err
	}
	if ok {
		m.emit(EventHit, key, nil)
		return v, nil
	}

	m.emit(EventMiss, key, nil)
	v, err = m.fn(key)
	if err != nil {
		m.emit(EventFailure, key, err)
		return zero, err
	}
	if _, err := m.table.InsertIfAbsent(tk, v); err != nil {
		m.emit(EventFailure, key, err)
		return zero, err
	}
	return v, nil
}

// Len reports the number of cached keys.
func (m *Keyed[K, T, V]) Len() int {
	return m.table.Len()
}

// Keys returns the cached table keys in the order they were first computed.
func (m *Keyed[K, T, V]) Keys() []T {
	return m.table.Keys()
}

// Reset drops every cached entry and zeroes the counters.
func (m *Keyed[K, T, V]) Reset() error {
	r, ok := m.table.(store.Resetter)
	if !ok {
		return ErrNotResettable
	}
	if err := r.Reset(); err != nil {
		return err
	}
	m.emit(EventReset, nil, nil)
	return nil
}
