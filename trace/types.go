package trace

import (
	"fmt"

	"github.com/katalvlaran/cpop/closest"
)

// Kind identifies the hook an Event came from.
type Kind int

const (
	KindCompare Kind = iota
	KindNewMinimum
	KindDivide
	KindStrip
)

// String returns the lower-case hook name.
func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindNewMinimum:
		return "new-minimum"
	case KindDivide:
		return "divide"
	case KindStrip:
		return "strip"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one hook invocation. Only the fields relevant to Kind are set:
//
//   - compare, new-minimum: A, B, D
//   - divide:               MidX, Depth
//   - strip:                MidX, Delta, Size, Depth
type Event struct {
	Kind  Kind
	A, B  closest.Ref
	D     float64
	MidX  float64
	Delta float64
	Size  int
	Depth int
}

// String renders the event on one line.
func (e Event) String() string {
	switch e.Kind {
	case KindCompare, KindNewMinimum:
		return fmt.Sprintf("%s #%d %v #%d %v d=%g", e.Kind, e.A.Index, e.A.Point, e.B.Index, e.B.Point, e.D)
	case KindDivide:
		return fmt.Sprintf("%s depth=%d x=%g", e.Kind, e.Depth, e.MidX)
	case KindStrip:
		return fmt.Sprintf("%s depth=%d x=%g delta=%g size=%d", e.Kind, e.Depth, e.MidX, e.Delta, e.Size)
	default:
		return e.Kind.String()
	}
}
