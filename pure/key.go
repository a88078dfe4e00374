package pure

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

// KeyFunc derives the comparable table key of a call. An error fails the
// call before the wrapped function runs.
type KeyFunc[K any, T comparable] func(K) (T, error)

var ErrUncomparableKey = errors.New("key is neither comparable nor a fmt.Stringer")

// IdentityKey uses the key itself. Equality is Go's ==: by value for scalars,
// strings, arrays and structs, by identity for pointers and channels.
func IdentityKey[K comparable]() KeyFunc[K, K] {
	return func(k K) (K, error) {
		return k, nil
	}
}

// StringerKey keys by String(). Two keys are equal when they print the same.
func StringerKey[K fmt.Stringer]() KeyFunc[K, string] {
	return func(k K) (string, error) {
		return k.String(), nil
	}
}

// HashKey keys by the xxhash64 digest of helper.EncodeKey: the key's dynamic
// type and its %#v rendering. It is value based for slices, maps and structs.
// A top-level pointer or channel hashes its address and compares by identity;
// pointers nested inside other values print their address too.
// Distinct keys may collide in principle, so prefer IdentityKey or StringerKey
// when they apply.
func HashKey[K any]() KeyFunc[K, uint64] {
	return func(k K) (uint64, error) {
		return xxhash.Sum64String(helper.EncodeKey(k)), nil
	}
}

// stringerKey is the table key of a fmt.Stringer. The type keeps a Stringer
// apart from a plain string, or another type, that prints the same.
type stringerKey struct {
	typ  reflect.Type
	text string
}

// DynamicKey prefers String(), tagged with the key's type, and falls back to
// the key itself when its dynamic value is comparable. Keys holding a slice,
// map or func anywhere outside a pointer fail with ErrUncomparableKey.
func DynamicKey[K any]() KeyFunc[K, any] {
	return func(k K) (any, error) {
		if stringer, ok := any(k).(fmt.Stringer); ok {
			return stringerKey{typ: reflect.TypeOf(k), text: stringer.String()}, nil
		}
		if !hashable(reflect.ValueOf(k)) {
			return nil, fmt.Errorf("%w: %T", ErrUncomparableKey, k)
		}
		return k, nil
	}
}

// hashable walks interface, struct and array values, which Type.Comparable
// accepts even when they hold a slice or map at runtime.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
