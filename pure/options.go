package pure

import (
	"github.com/on-the-ground/memo_ive_go/store"
	"go.uber.org/zap"
)

// Option configures a memoizer at construction.
type Option func(*settings)

type settings struct {
	name      string
	suffix    string
	observers observers
	backend   store.Backend
}

func newSettings(opts []Option) settings {
	s := settings{backend: store.BackendMap}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithName replaces the random instance id. Names are labels only;
// two memoizers with the same name still own separate caches.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithIDSuffix appends "/suffix" to a name set by WithName, so instances built
// from one option list keep distinct ids. Random ids are left alone.
func WithIDSuffix(suffix string) Option {
	return func(s *settings) {
		s.suffix = suffix
	}
}

// WithObserver attaches an Observer. Repeated options fan out in order.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger logs every event to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.observers = append(s.observers, zapObserver{logger: logger})
		}
	}
}

// WithBackend selects the table implementation of a keyed memoizer.
// Each memoizer opens its own table; single-slot memoizers ignore it.
func WithBackend(b store.Backend) Option {
	return func(s *settings) {
		s.backend = b
	}
}
