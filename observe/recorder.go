package observe

import (
	"slices"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/shared/orderedbuffer"
)

var _ pure.Observer = (*Recorder)(nil)

// Record is one observed event with its arrival number.
type Record struct {
	Seq uint64
	pure.EventData
}

// Recorder keeps the most recent events a memoizer emitted, oldest first.
// Its capacity bounds the trail only; counts cover every event ever seen.
// A Recorder can observe several memoizers; events carry the memoizer id.
type Recorder struct {
	trail   *orderedbuffer.OrderedBoundedBuffer[Record]
	next    uint64
	counts  map[pure.Event]int
	byMemo  map[string]map[pure.Event]int
	memos   []string
	dropped int
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{
		trail: orderedbuffer.NewOrderedBoundedBuffer(capacity, func(a, b Record) int {
			switch {
			case a.Seq < b.Seq:
				return -1
			case a.Seq > b.Seq:
				return 1
			default:
				return 0
			}
		}),
		counts: make(map[pure.Event]int),
		byMemo: make(map[string]map[pure.Event]int),
	}
}

func (r *Recorder) On(e pure.EventData) {
	r.next++
	if _, evicted := r.trail.Insert(Record{Seq: r.next, EventData: e}); evicted {
		r.dropped++
	}

	r.counts[e.Event]++
	m, ok := r.byMemo[e.Memoizer]
	if !ok {
		m = make(map[pure.Event]int)
		r.byMemo[e.Memoizer] = m
		r.memos = append(r.memos, e.Memoizer)
	}
	m[e.Event]++
}

// Events returns the retained trail, oldest first.
func (r *Recorder) Events() []Record {
	return r.trail.Snapshot()
}

// Count reports how many events of a type were observed in total.
func (r *Recorder) Count(event pure.Event) int {
	return r.counts[event]
}

// CountFor reports how many events of a type one memoizer emitted.
func (r *Recorder) CountFor(memoizer string, event pure.Event) int {
	return r.byMemo[memoizer][event]
}

// Memoizers lists the ids seen so far, in order of their first event.
func (r *Recorder) Memoizers() []string {
	return slices.Clone(r.memos)
}

// Dropped reports how many records fell off the trail.
func (r *Recorder) Dropped() int {
	return r.dropped
}

// Clear forgets the trail and every count.
func (r *Recorder) Clear() {
	r.trail.Clear()
	r.next = 0
	r.dropped = 0
	clear(r.counts)
	clear(r.byMemo)
	r.memos = nil
}
