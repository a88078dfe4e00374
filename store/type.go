package store

import (
	"errors"
	"fmt"
	"strings"
)

// Table is the associative store behind a keyed memoizer.
// Entries are only ever added; a table never evicts on its own.
type Table[T comparable, V any] interface {
	// Load returns the value stored under key.
	Load(key T) (value V, ok bool, err error)
	// InsertIfAbsent stores value under key unless the key is already present.
	InsertIfAbsent(key T, value V) (inserted bool, err error)
	// Len reports the number of stored keys.
	Len() int
	// Keys returns the stored keys in insertion order.
	Keys() []T
}

// Resetter is implemented by tables that can drop every entry at once.
type Resetter interface {
	Reset() error
}

// Backend names a Table implementation.
type Backend string

const (
	BackendMap   Backend = "map"
	BackendMemDB Backend = "memdb"
)

var ErrUnknownBackend = errors.New("unknown table backend")

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendMap, BackendMemDB:
		return b, nil
	case "":
		return BackendMap, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Open creates an empty table for the given backend.
func Open[T comparable, V any](b Backend) (Table[T, V], error) {
	switch b {
	case BackendMap, "":
		return NewMapTable[T, V](), nil
	case BackendMemDB:
		t, err := NewMemDBTable[T, V]()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}
