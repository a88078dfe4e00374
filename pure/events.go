package pure

// Observer receives memoizer events. Memoizers call On synchronously, in the
// caller's goroutine, before Call returns.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(EventData)

func (f ObserverFunc) On(eventData EventData) { f(eventData) }

// Event represents a memoizer event type.
type Event int

const (
	// EventHit is emitted when Call answers from the cache.
	EventHit Event = iota
	// EventMiss is emitted right before the wrapped function is invoked.
	EventMiss
	// EventFailure is emitted when a call fails; nothing was cached.
	EventFailure
	// EventReset is emitted when the owner drops every cached entry.
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventFailure:
		return "failure"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// EventData carries the details of a memoizer event.
type EventData struct {
	Memoizer string
	Kind     Kind
	Event    Event
	Key      any
	Err      error
}

type observers []Observer

func (obs observers) On(eventData EventData) {
	for _, o := range obs {
		o.On(eventData)
	}
}
