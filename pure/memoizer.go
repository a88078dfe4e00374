package pure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Func is the wrapped computation. A non-nil error is a computation failure:
// memoizers hand it back unchanged and never cache it.
type Func[K, V any] func(K) (V, error)

// Memoizer is the only surface callers of a memoizer need.
type Memoizer[K, V any] interface {
	Call(key K) (V, error)
}

// Kind selects a memoizer flavour.
type Kind int

const (
	// KindSingleSlot remembers only the most recent key.
	KindSingleSlot Kind = iota
	// KindKeyed remembers every distinct key forever.
	KindKeyed
)

var ErrUnknownKind = errors.New("unknown memoizer kind")

func (k Kind) String() string {
	switch k {
	case KindSingleSlot:
		return "single"
	case KindKeyed:
		return "keyed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single-slot", "last", "":
		return KindSingleSlot, nil
	case "keyed", "table":
		return KindKeyed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Stats counts what a memoizer did since construction or the last reset.
// Misses is the number of times the wrapped function was invoked,
// Failures the number of calls that returned an error.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Failures uint64
}

// New returns a fresh memoizer of the given kind over fn. Every call builds a
// new instance with its own id and its own cache, even for the same fn.
// It panics on an unknown kind.
func New[K comparable, V any](kind Kind, fn Func[K, V], opts ...Option) Memoizer[K, V] {
	switch kind {
	case KindSingleSlot:
		return NewSingleSlot(fn, opts...)
	case KindKeyed:
		return NewKeyed(fn, opts...)
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownKind, kind))
	}
}

// base is the bookkeeping shared by every memoizer.
type base struct {
	id       string
	kind     Kind
	observer Observer
	stats    Stats
}

func newBase(kind Kind, s settings) base {
	id := s.name
	switch {
	case id == "":
		id = uuid.New().String()
	case s.suffix != "":
		id += "/" + s.suffix
	}
	b := base{id: id, kind: kind}
	if len(s.observers) > 0 {
		b.observer = s.observers
	}
	return b
}

// ID returns the instance id used in events and logs.
func (b *base) ID() string { return b.id }

// Stats returns a copy of the counters.
func (b *base) Stats() Stats { return b.stats }

func (b *base) emit(event Event, key any, err error) {
	switch event {
	case EventHit:
		b.stats.Hits++
	case EventMiss:
		b.stats.Misses++
	case EventFailure:
		b.stats.Failures++
	case EventReset:
		b.stats = Stats{}
	}
	if b.observer == nil {
		return
	}
	b.observer.On(EventData{
		Memoizer: b.id,
		Kind:     b.kind,
		Event:    event,
		Key:      key,
		Err:      err,
	})
}

func mustFn[K, V any](fn Func[K, V]) {
	if fn == nil {
		panic("fn should not be nil")
	}
}
