package trace

import "github.com/katalvlaran/cpop/closest"

// multi fans every event out to several tracers, in order.
type multi []closest.Tracer

// nilable is implemented by this package's pointer tracers so that a typed
// nil such as (*Recorder)(nil) can be told apart from a usable tracer.
type nilable interface{ isNil() bool }

// Multi returns a Tracer forwarding each event to every non-nil t.
// Nil *Recorder and *Logger values are dropped as well. A typed nil of any
// other Tracer implementation is forwarded as is.
func Multi(tracers ...closest.Tracer) closest.Tracer {
	m := make(multi, 0, len(tracers))
	for _, t := range tracers {
		if t == nil {
			continue
		}
		if n, ok := t.(nilable); ok && n.isNil() {
			continue
		}
		m = append(m, t)
	}

	return m
}

func (m multi) Compare(a, b closest.Ref, d float64) {
	for _, t := range m {
		t.Compare(a, b, d)
	}
}

func (m multi) NewMinimum(a, b closest.Ref, d float64) {
	for _, t := range m {
		t.NewMinimum(a, b, d)
	}
}

func (m multi) Divide(midX float64, depth int) {
	for _, t := range m {
		t.Divide(midX, depth)
	}
}

func (m multi) Strip(midX, delta float64, size, depth int) {
	for _, t := range m {
		t.Strip(midX, delta, size, depth)
	}
}
