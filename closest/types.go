// Package closest provides tunable options, event hooks, result types and
// sentinel errors for the closest-pair solvers.
package closest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cpop/geom"
)

// Sentinel errors for closest-pair execution.
var (
	// ErrInvalidInput is returned when a point has a NaN or infinite coordinate.
	// The underlying geom.ErrNonFinite is wrapped alongside it.
	ErrInvalidInput = errors.New("closest: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closest: invalid option supplied")
)

const (
	// DefaultBaseCase is the subset size at or below which the divide step
	// hands over to brute force.
	DefaultBaseCase = 3

	// minBaseCase and maxBaseCase bound WithBaseCase.
	minBaseCase = 2
	maxBaseCase = 64
)

// Ref identifies one input point during tracing: its position in the
// caller's slice and its coordinates.
type Ref struct {
	Index int
	geom.Point
}

// Tracer receives every algorithm event. Implementations must not retain
// the solver's state; they only see copies.
type Tracer interface {
	// Compare is called for every pair whose true distance is computed.
	Compare(a, b Ref, d float64)
	// NewMinimum is called for the first pair and each time the best distance
	// of the run strictly improves.
	NewMinimum(a, b Ref, d float64)
	// Divide is called before a subset is split at midX.
	Divide(midX float64, depth int)
	// Strip is called once the band |x - midX| < delta has been collected.
	Strip(midX, delta float64, size, depth int)
}

// Option configures a solver run via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds the knobs and callbacks of a single run.
type Options struct {
	// OnCompare is called for each pair whose distance is computed,
	// in the base case and in the strip.
	OnCompare func(a, b Ref, d float64)

	// OnNewMinimum is called for the first pair compared and whenever the best
	// distance found so far strictly improves.
	OnNewMinimum func(a, b Ref, d float64)

	// OnDivide is called before recursing, with the x-coordinate of the
	// split point and the recursion depth (root = 0).
	OnDivide func(midX float64, depth int)

	// OnStrip is called after the strip of a merge step has been built.
	OnStrip func(midX, delta float64, size, depth int)

	// BaseCase is the subset size at or below which brute force is used.
	BaseCase int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and BaseCase = 3.
func DefaultOptions() Options {
	return Options{
		OnCompare:    func(Ref, Ref, float64) {},
		OnNewMinimum: func(Ref, Ref, float64) {},
		OnDivide:     func(float64, int) {},
		OnStrip:      func(float64, float64, int, int) {},
		BaseCase:     DefaultBaseCase,
	}
}

// WithOnCompare registers a callback for every computed pair distance.
func WithOnCompare(fn func(a, b Ref, d float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnNewMinimum registers a callback for every strict improvement of the best distance.
func WithOnNewMinimum(fn func(a, b Ref, d float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNewMinimum = fn
		}
	}
}

// WithOnDivide registers a callback run before each split.
func WithOnDivide(fn func(midX float64, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDivide = fn
		}
	}
}

// WithOnStrip registers a callback run after each strip is collected.
func WithOnStrip(fn func(midX, delta float64, size, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStrip = fn
		}
	}
}

// WithTracer wires all four hooks to t. A nil tracer is ignored.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t == nil {
			return
		}
		o.OnCompare = t.Compare
		o.OnNewMinimum = t.NewMinimum
		o.OnDivide = t.Divide
		o.OnStrip = t.Strip
	}
}

// WithBaseCase sets the brute-force threshold of the divide step.
//
//	2 ≤ k ≤ 64: use brute force for subsets of at most k points
//	otherwise:  invalid option → ErrOptionViolation
func WithBaseCase(k int) Option {
	return func(o *Options) {
		if k < minBaseCase || k > maxBaseCase {
			o.err = fmt.Errorf("%w: BaseCase must be in [%d, %d] (got %d)",
				ErrOptionViolation, minBaseCase, maxBaseCase, k)
			return
		}
		o.BaseCase = k
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of a closest-pair run.
//
//   - Distance: the minimum distance, or +Inf when fewer than two points were given.
//   - Found:    false exactly when the input has fewer than two points.
//   - A, B:     the achieving pair, in the order it was discovered.
//   - I, J:     their indices in the caller's slice (-1 when !Found).
type Result[P geom.Locator] struct {
	Distance float64
	Found    bool
	A, B     P
	I, J     int
}

// Pair returns the achieving pair and whether one exists.
func (r Result[P]) Pair() (a, b P, ok bool) {
	return r.A, r.B, r.Found
}

// String renders the result for logs and CLI output.
func (r Result[P]) String() string {
	if !r.Found {
		return "no pair (fewer than two points)"
	}

	return fmt.Sprintf("%.6f between #%d %v and #%d %v", r.Distance, r.I, geom.Of(r.A), r.J, geom.Of(r.B))
}
