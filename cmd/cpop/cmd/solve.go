package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cpop/benchmark"
	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
	"github.com/katalvlaran/cpop/geom"
	"github.com/katalvlaran/cpop/render"
	"github.com/katalvlaran/cpop/trace"
)

const (
	algoDivide = "dc"
	algoBrute  = "brute"
	algoBoth   = "both"
)

type solveFlags struct {
	algorithm string
	byColor   bool
	sample    bool
	trace     bool
	plot      string
	steps     string
}

func newSolveCommand(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [points-file]",
		Short: "Find the closest pair of points",
		Long: `Find the closest pair in a points file (.yaml, .yml, .json or .csv), the
built-in colored sample (--sample), or a generated dataset (--kind, --points,
--seed).

With --by-color every color group is solved on its own. --trace logs each
recursive step at debug level; --plot draws the points, the pair and the
dividing lines (one pair per color with --by-color); --steps writes one
numbered figure per divide, strip and new-minimum step.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.OutOrStdout(), args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", algoDivide, "solver: dc, brute or both (both checks agreement)")
	fl.BoolVar(&f.byColor, "by-color", false, "solve each color group separately")
	fl.BoolVar(&f.sample, "sample", false, "use the built-in 20-point colored sample")
	fl.BoolVar(&f.trace, "trace", false, "log every divide, strip and comparison step")
	fl.StringVar(&f.plot, "plot", "", "write a figure to this file (.png, .svg, .pdf)")
	fl.StringVar(&f.steps, "steps", "", "write one PNG per recursion step into this directory")
	fl.IntP("points", "n", 1000, "number of generated points")

	return cmd
}

// loadPoints resolves the input set: file argument, sample, or generator.
func (a *app) loadPoints(args []string, f solveFlags) ([]geom.ColoredPoint, string, error) {
	switch {
	case len(args) == 1:
		pts, err := dataset.ReadFile(args[0])
		return pts, args[0], err
	case f.sample:
		return dataset.Sample(), "sample", nil
	default:
		d := a.cfg.Dataset
		pts, err := dataset.Generate(dataset.Kind(d.Kind), d.N, d.Box(), d.Seed)
		if err != nil {
			return nil, "", err
		}
		return dataset.Plain(pts, ""), fmt.Sprintf("%s n=%d seed=%d", d.Kind, d.N, d.Seed), nil
	}
}

func (a *app) runSolve(out io.Writer, args []string, f solveFlags) error {
	switch f.algorithm {
	case algoDivide, algoBrute, algoBoth:
	default:
		return fmt.Errorf("unknown algorithm %q (want %s, %s or %s)", f.algorithm, algoDivide, algoBrute, algoBoth)
	}
	if f.byColor && f.algorithm != algoDivide {
		return fmt.Errorf("--by-color always uses divide and conquer, --algorithm %s is not supported with it", f.algorithm)
	}
	if f.byColor && f.steps != "" {
		return errors.New("--steps follows a single run and cannot be combined with --by-color")
	}

	pts, source, err := a.loadPoints(args, f)
	if err != nil {
		return err
	}
	a.log.Info("points loaded", slog.String("source", source), slog.Int("n", len(pts)))
	_, _ = fmt.Fprintf(out, "points: %d\n", len(pts))

	var (
		tracers []closest.Tracer
		rec     *trace.Recorder
	)
	if f.trace {
		tracers = append(tracers, trace.NewLogger(a.log))
	}
	if (f.plot != "" && !f.byColor) || f.steps != "" {
		rec = trace.NewRecorder(trace.WithoutCompares())
		tracers = append(tracers, rec)
	}
	var opts []closest.Option
	if len(tracers) > 0 {
		opts = append(opts, closest.WithTracer(trace.Multi(tracers...)))
	}
	title := filepath.Base(source)

	if f.byColor {
		results, err := a.solveByColor(out, pts, opts)
		if err != nil || f.plot == "" {
			return err
		}
		var pairs []render.Pair
		for _, r := range results {
			if r.Found {
				pairs = append(pairs, render.Pair{A: r.A.Point, B: r.B.Point, Distance: r.Distance, Label: r.Color})
			}
		}
		p, err := render.Scatter(fmt.Sprintf("Closest pair per color (%s)", title), pts, nil, pairs...)
		if err != nil {
			return err
		}
		return a.savePlot(p, f.plot)
	}

	res, err := a.solveOne(pts, f.algorithm, opts)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "closest: %s\n", res)

	if f.plot != "" {
		var pairs []render.Pair
		if res.Found {
			pairs = append(pairs, render.Pair{A: res.A.Point, B: res.B.Point, Distance: res.Distance})
		}
		p, err := render.Scatter(fmt.Sprintf("Closest pair (%s)", title), pts, rec, pairs...)
		if err != nil {
			return err
		}
		if err = a.savePlot(p, f.plot); err != nil {
			return err
		}
	}
	if f.steps != "" {
		return a.saveSteps(out, pts, rec, f.steps)
	}

	return nil
}

func (a *app) figureSize() (vg.Length, vg.Length) {
	return vg.Length(a.cfg.Render.Width) * vg.Inch, vg.Length(a.cfg.Render.Height) * vg.Inch
}

func (a *app) savePlot(p *plot.Plot, path string) error {
	w, h := a.figureSize()
	if err := render.Save(p, path, w, h); err != nil {
		return err
	}
	a.log.Info("figure written", slog.String("path", path))

	return nil
}

// saveSteps renders one frame per recorded step into dir.
func (a *app) saveSteps(out io.Writer, pts []geom.ColoredPoint, rec *trace.Recorder, dir string) error {
	frames, err := render.Steps(pts, rec)
	if errors.Is(err, render.ErrNoSteps) || errors.Is(err, render.ErrNoPoints) {
		a.log.Warn("no steps to draw", slog.String("dir", dir))
		_, _ = fmt.Fprintf(out, "steps: 0 frames in %s\n", dir)
		return nil
	}
	if err != nil {
		return err
	}
	w, h := a.figureSize()
	paths, err := render.SaveFrames(frames, dir, "png", w, h)
	if err != nil {
		return err
	}
	a.log.Info("step frames written", slog.String("dir", dir), slog.Int("frames", len(paths)))
	_, _ = fmt.Fprintf(out, "steps: %d frames in %s\n", len(paths), dir)

	return nil
}

// solveOne runs the selected solver. With "both" the brute-force result is
// checked against divide-and-conquer and the latter is returned.
func (a *app) solveOne(pts []geom.ColoredPoint, algorithm string, opts []closest.Option) (closest.Result[geom.ColoredPoint], error) {
	if algorithm == algoBrute {
		t := benchmark.StartTimer()
		res, err := closest.BruteForce(pts, opts...)
		a.log.Info("solved", slog.String("algorithm", algoBrute), slog.Duration("elapsed", t.Elapsed()))
		return res, err
	}

	t := benchmark.StartTimer()
	res, err := closest.ClosestPair(pts, opts...)
	a.log.Info("solved", slog.String("algorithm", algoDivide), slog.Duration("elapsed", t.Elapsed()))
	if err != nil || algorithm != algoBoth {
		return res, err
	}

	t = benchmark.StartTimer()
	ref, err := closest.BruteForce(pts)
	a.log.Info("solved", slog.String("algorithm", algoBrute), slog.Duration("elapsed", t.Elapsed()))
	if err != nil {
		return res, err
	}
	if !benchmark.Agree(ref.Distance, res.Distance, a.cfg.Bench.Tolerance) {
		return res, fmt.Errorf("%w: brute=%v dc=%v", benchmark.ErrMismatch, ref.Distance, res.Distance)
	}

	return res, nil
}

func (a *app) solveByColor(out io.Writer, pts []geom.ColoredPoint, opts []closest.Option) ([]closest.ColorResult, error) {
	results, err := closest.ByColor(pts, opts...)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		label := r.Color
		if label == "" {
			label = "(unlabeled)"
		}
		_, _ = fmt.Fprintf(out, "%s (%d points): %s\n", label, r.Size, r.Result)
	}

	return results, nil
}
