// Package pure memoizes pure functions of one argument.
//
// Two flavours are provided:
//
//   - SingleSlot remembers only the last key and its value. It pays off when
//     the same key is repeated (A, A, B, B) and never when keys alternate
//     (A, B, A, B).
//   - Keyed remembers every distinct key forever, in a store.Table. Repeats
//     hit no matter what was called in between.
//
// Both wrap a Func, which may fail. A failure is returned to the caller
// unchanged and is never cached: a single slot keeps its previous entry and a
// keyed table leaves the key absent, so the next call computes again. A panic
// in the wrapped function propagates the same way, without touching the cache.
//
// New is the factory: each call returns an independent memoizer that owns its
// cache. Nothing is shared between instances or kept in package state.
//
//	swatch := pure.New(pure.KindSingleSlot, render)
//	s, err := swatch.Call("red")
//
// Key equality is explicit. NewSingleSlot and NewKeyed use ==, which is value
// equality for comparable values and identity for pointers. NewSingleSlotFunc
// takes an equality function, and NewKeyedBy takes a KeyFunc such as
// StringerKey, HashKey or DynamicKey.
//
// Memoizers are not safe for concurrent use. The check-compute-store sequence
// of Call is not atomic; callers sharing a memoizer across goroutines must
// serialize access themselves.
//
// WARNING: only memoize pure functions. An impure function keeps returning
// whatever it returned the first time for a key.
package pure
