package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/cpop/dataset"
)

var (
	// ErrNoSizes is returned when Run is given no sizes.
	ErrNoSizes = errors.New("benchmark: no sizes given")

	// ErrMismatch is returned when the two solvers disagree on a dataset.
	ErrMismatch = errors.New("benchmark: brute force and divide-and-conquer disagree")

	// ErrBadOption is returned for an invalid Option value.
	ErrBadOption = errors.New("benchmark: invalid option")
)

// DefaultTolerance is the relative agreement threshold between solvers.
const DefaultTolerance = 1e-9

// Options configures Run. Build with DefaultOptions and Option helpers.
type Options struct {
	// Repeats is how many timed runs each solver gets per size.
	Repeats int

	// BruteLimit skips brute force for sizes above it; 0 disables the limit.
	BruteLimit int

	// Tolerance is the relative agreement threshold.
	Tolerance float64

	// Kind, Box and Seed select the generated dataset. Size i uses Seed+i.
	Kind dataset.Kind
	Box  dataset.Box
	Seed int64

	// Logger receives one Info record per row. Nil means slog.Default().
	Logger *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns three repeats over uniform points in DefaultBox.
func DefaultOptions() Options {
	return Options{
		Repeats:   3,
		Tolerance: DefaultTolerance,
		Kind:      dataset.KindUniform,
		Box:       dataset.DefaultBox(),
		Seed:      1,
	}
}

// WithRepeats sets the number of timed runs per solver and size (>= 1).
func WithRepeats(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: repeats=%d", ErrBadOption, n)
			return
		}
		o.Repeats = n
	}
}

// WithBruteLimit skips brute force above n points (0 = never skip).
func WithBruteLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: brute limit=%d", ErrBadOption, n)
			return
		}
		o.BruteLimit = n
	}
}

// WithTolerance sets the relative agreement threshold (finite, >= 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: tolerance=%v", ErrBadOption, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithDataset selects the generator, its bounds and the base seed.
func WithDataset(kind dataset.Kind, box dataset.Box, seed int64) Option {
	return func(o *Options) {
		o.Kind, o.Box, o.Seed = kind, box, seed
	}
}

// WithLogger sets the row logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Stats summarizes repeated timings of one solver.
type Stats struct {
	Samples int
	Mean    time.Duration
	StdDev  time.Duration
	Min     time.Duration
}

// Row is the outcome of one size.
type Row struct {
	N int

	// BruteSkipped is set when N exceeded the brute-force limit; the
	// brute-force fields are then NaN and zero.
	BruteSkipped  bool
	BruteDistance float64
	BruteTime     Stats

	DCDistance float64
	DCTime     Stats

	// Agree reports whether both distances match within tolerance. It is
	// true when brute force was skipped.
	Agree bool
}

// Speedup is the ratio of mean brute-force time to mean divide-and-conquer
// time, or NaN when either is unavailable.
func (r Row) Speedup() float64 {
	if r.BruteSkipped || r.DCTime.Mean <= 0 {
		return math.NaN()
	}

	return float64(r.BruteTime.Mean) / float64(r.DCTime.Mean)
}
