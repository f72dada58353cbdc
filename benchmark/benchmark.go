package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
	"github.com/katalvlaran/cpop/geom"
)

// Run times brute force and divide-and-conquer on one generated dataset per
// size and returns one Row per size, in the order given.
//
// Every row is checked for agreement. On the first disagreement Run returns
// the rows so far, including the failing one, and an error wrapping
// ErrMismatch. ctx is checked between timed runs.
func Run(ctx context.Context, sizes []int, opts ...Option) ([]Row, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	rows := make([]Row, 0, len(sizes))
	for i, n := range sizes {
		pts, err := dataset.Generate(o.Kind, n, o.Box, o.Seed+int64(i))
		if err != nil {
			return rows, fmt.Errorf("size %d: %w", n, err)
		}

		row, err := runSize(ctx, pts, o)
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)

		log.Info("benchmark row",
			slog.Int("n", row.N),
			slog.Bool("brute_skipped", row.BruteSkipped),
			slog.Duration("brute_mean", row.BruteTime.Mean),
			slog.Duration("dc_mean", row.DCTime.Mean),
			slog.Float64("distance", row.DCDistance),
		)
		if !row.Agree {
			log.Warn("solvers disagree",
				slog.Int("n", row.N),
				slog.Float64("brute", row.BruteDistance),
				slog.Float64("dc", row.DCDistance),
			)
			return rows, fmt.Errorf("%w: n=%d brute=%v dc=%v", ErrMismatch, n, row.BruteDistance, row.DCDistance)
		}
	}

	return rows, nil
}

// runSize times both solvers on pts.
func runSize(ctx context.Context, pts []geom.Point, o Options) (Row, error) {
	row := Row{N: len(pts), BruteDistance: math.NaN(), Agree: true}

	var err error
	row.DCDistance, row.DCTime, err = timeSolver(ctx, "divide-and-conquer", o.Repeats, func() float64 {
		return closest.ClosestPairDistance(pts)
	})
	if err != nil {
		return row, err
	}

	if o.BruteLimit > 0 && len(pts) > o.BruteLimit {
		row.BruteSkipped = true
		return row, nil
	}
	row.BruteDistance, row.BruteTime, err = timeSolver(ctx, "brute force", o.Repeats, func() float64 {
		return closest.BruteForceDistance(pts)
	})
	if err != nil {
		return row, err
	}
	row.Agree = Agree(row.BruteDistance, row.DCDistance, o.Tolerance)

	return row, nil
}

// timeSolver runs fn repeats times and returns its last result with timing stats.
func timeSolver(ctx context.Context, name string, repeats int, fn func() float64) (float64, Stats, error) {
	var (
		d       float64
		samples = make([]float64, 0, repeats)
	)
	for r := 0; r < repeats; r++ {
		if err := ctx.Err(); err != nil {
			return math.NaN(), Stats{}, fmt.Errorf("%s: %w", name, err)
		}
		t := StartTimer()
		d = fn()
		samples = append(samples, float64(t.Elapsed()))
	}

	return d, summarize(samples), nil
}

// summarize turns nanosecond samples into Stats.
func summarize(ns []float64) Stats {
	if len(ns) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(ns, nil)
	if len(ns) < 2 {
		std = 0
	}

	return Stats{
		Samples: len(ns),
		Mean:    time.Duration(mean),
		StdDev:  time.Duration(std),
		Min:     time.Duration(floats.Min(ns)),
	}
}

// Agree reports whether a and b match within tol, relative to the larger
// magnitude (absolute below 1). Two +Inf values agree.
func Agree(a, b, tol float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// WriteTable prints rows as an aligned text table.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "n\tbrute distance\tbrute time\td&c distance\td&c time\tspeedup\t")
	for _, r := range rows {
		bd, bt, sp := "skipped", "-", "-"
		if !r.BruteSkipped {
			bd = fmt.Sprintf("%.6f", r.BruteDistance)
			bt = r.BruteTime.Mean.String()
			sp = fmt.Sprintf("%.1fx", r.Speedup())
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.6f\t%s\t%s\t\n", r.N, bd, bt, r.DCDistance, r.DCTime.Mean, sp)
	}

	return tw.Flush()
}
