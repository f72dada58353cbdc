package trace

import "github.com/katalvlaran/cpop/closest"

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithoutCompares drops compare events. A run over n points emits
// O(n log n) of them, which dwarfs everything else.
func WithoutCompares() RecorderOption {
	return func(r *Recorder) { r.skipCompare = true }
}

// WithLimit caps the number of stored events; later events are counted in
// Dropped but not kept. A limit <= 0 means unbounded.
func WithLimit(n int) RecorderOption {
	return func(r *Recorder) { r.limit = n }
}

// Recorder is an in-memory closest.Tracer.
type Recorder struct {
	events      []Event
	skipCompare bool
	limit       int
	dropped     int
}

var _ closest.Tracer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Recorder) isNil() bool { return r == nil }

func (r *Recorder) add(e Event) {
	if r.limit > 0 && len(r.events) >= r.limit {
		r.dropped++
		return
	}
	r.events = append(r.events, e)
}

// Compare implements closest.Tracer.
func (r *Recorder) Compare(a, b closest.Ref, d float64) {
	if r.skipCompare {
		return
	}
	r.add(Event{Kind: KindCompare, A: a, B: b, D: d})
}

// NewMinimum implements closest.Tracer.
func (r *Recorder) NewMinimum(a, b closest.Ref, d float64) {
	r.add(Event{Kind: KindNewMinimum, A: a, B: b, D: d})
}

// Divide implements closest.Tracer.
func (r *Recorder) Divide(midX float64, depth int) {
	r.add(Event{Kind: KindDivide, MidX: midX, Depth: depth})
}

// Strip implements closest.Tracer.
func (r *Recorder) Strip(midX, delta float64, size, depth int) {
	r.add(Event{Kind: KindStrip, MidX: midX, Delta: delta, Size: size, Depth: depth})
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}

// Filter returns the recorded events of the given kinds, in order.
func (r *Recorder) Filter(kinds ...Kind) []Event {
	var out []Event
	for _, e := range r.events {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}

	return out
}

// Last returns the most recent event of kind k.
func (r *Recorder) Last(k Kind) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == k {
			return r.events[i], true
		}
	}

	return Event{}, false
}

// Len is the number of stored events.
func (r *Recorder) Len() int { return len(r.events) }

// Dropped is the number of events discarded because of WithLimit.
func (r *Recorder) Dropped() int { return r.dropped }

// MaxDepth is the deepest divide seen, or -1 if there was none.
func (r *Recorder) MaxDepth() int {
	depth := -1
	for _, e := range r.events {
		if e.Kind == KindDivide && e.Depth > depth {
			depth = e.Depth
		}
	}

	return depth
}

// Reset clears the recording so the Recorder can be reused.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
	r.dropped = 0
}
