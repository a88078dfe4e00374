package pure

var _ Memoizer[string, string] = (*SingleSlot[string, string])(nil)

// cell holds the last successful computation. key and value are only
// meaningful when set is true, and are always written together.
type cell[K, V any] struct {
	key   K
	value V
	set   bool
}

// SingleSlot is a cache of depth one: it answers from memory only when the
// key equals the key of the previous successful call.
//
// Repeating a key (A, A, B, B) hits on every call after the first of a run;
// alternating keys (A, B, A, B) misses on every call.
//
// A SingleSlot is not safe for concurrent use.
type SingleSlot[K, V any] struct {
	base
	fn    Func[K, V]
	equal func(a, b K) bool
	cell  cell[K, V]
}

// NewSingleSlot memoizes fn by the last key, compared with ==.
func NewSingleSlot[K comparable, V any](fn Func[K, V], opts ...Option) *SingleSlot[K, V] {
	return NewSingleSlotFunc(fn, func(a, b K) bool { return a == b }, opts...)
}

// NewSingleSlotFunc memoizes fn by the last key, compared with equal.
// Use it for keys that are not comparable, or that need value semantics
// where == would compare identity.
func NewSingleSlotFunc[K, V any](fn Func[K, V], equal func(a, b K) bool, opts ...Option) *SingleSlot[K, V] {
	mustFn(fn)
	if equal == nil {
		panic("equal should not be nil")
	}
	return &SingleSlot[K, V]{
		base:  newBase(KindSingleSlot, newSettings(opts)),
		fn:    fn,
		equal: equal,
	}
}

// Call returns the cached value when key equals the last key, otherwise it
// invokes fn and replaces the slot. A failed call leaves the slot untouched.
func (s *SingleSlot[K, V]) Call(key K) (V, error) {
	if s.cell.set && s.equal(s.cell.key, key) {
		s.emit(EventHit, key, nil)
		return s.cell.value, nil
	}

	s.emit(EventMiss, key, nil)
	v, err := s.fn(key)
	if err != nil {
		s.emit(EventFailure, key, err)
		var zero V
		return zero, err
	}
	s.cell = cell[K, V]{key: key, value: v, set: true}
	return v, nil
}

// Peek returns the current slot without invoking fn.
func (s *SingleSlot[K, V]) Peek() (key K, value V, ok bool) {
	return s.cell.key, s.cell.value, s.cell.set
}

// Reset empties the slot and zeroes the counters.
func (s *SingleSlot[K, V]) Reset() {
	s.cell = cell[K, V]{}
	s.emit(EventReset, nil, nil)
}
