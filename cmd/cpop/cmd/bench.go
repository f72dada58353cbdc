package cmd

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpop/benchmark"
	"github.com/katalvlaran/cpop/render"
)

func newBenchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time brute force against divide and conquer",
		Long: `Generate one dataset per size, time both solvers on it, check that they
agree, and print a table. With --plot-dir a log-log chart timings.png is
written there as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.runBench(ctx, cmd)
		},
	}

	fl := cmd.Flags()
	fl.IntSlice("sizes", []int{1000, 10000, 100000}, "dataset sizes")
	fl.Int("repeats", 3, "timed runs per solver and size")
	fl.Int("brute-limit", 20000, "skip brute force above this size (0 = never)")
	fl.Float64("tolerance", benchmark.DefaultTolerance, "relative agreement tolerance")
	fl.String("plot-dir", "", "directory for the timing chart")

	return cmd
}

func (a *app) runBench(ctx context.Context, cmd *cobra.Command) error {
	opts := append(a.cfg.BenchOptions(), benchmark.WithLogger(a.log))
	rows, runErr := benchmark.Run(ctx, a.cfg.Bench.Sizes, opts...)
	if len(rows) > 0 {
		if err := benchmark.WriteTable(cmd.OutOrStdout(), rows); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	dir := a.cfg.Render.Dir
	if dir == "" {
		return nil
	}
	p, err := render.Timings("Closest pair: brute force vs divide & conquer", rows)
	if errors.Is(err, render.ErrNoRows) {
		a.log.Warn("no timings to plot")
		return nil
	}
	if err != nil {
		return err
	}
	return a.savePlot(p, filepath.Join(dir, "timings.png"))
}
