package benchmark_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpop/benchmark"
	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// TestRun_Agreement runs both solvers on two sizes.
func TestRun_Agreement(t *testing.T) {
	rows, err := benchmark.Run(context.Background(), []int{200, 1000},
		benchmark.WithRepeats(2), benchmark.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for i, r := range rows {
		assert.Equal(t, []int{200, 1000}[i], r.N)
		assert.True(t, r.Agree)
		assert.False(t, r.BruteSkipped)
		assert.Equal(t, 2, r.BruteTime.Samples)
		assert.Equal(t, 2, r.DCTime.Samples)
		assert.LessOrEqual(t, r.DCTime.Min, r.DCTime.Mean)
		assert.InDelta(t, r.BruteDistance, r.DCDistance, 1e-9*math.Max(1, r.DCDistance))
	}
}

// TestRun_Deterministic repeats a run and compares everything but timings.
func TestRun_Deterministic(t *testing.T) {
	run := func() []benchmark.Row {
		rows, err := benchmark.Run(context.Background(), []int{300, 600},
			benchmark.WithRepeats(1),
			benchmark.WithDataset(dataset.KindUniformInt, dataset.Box{MinX: 0, MaxX: 5000, MinY: 0, MaxY: 5000}, 42),
			benchmark.WithLogger(quietLogger()))
		require.NoError(t, err)
		return rows
	}
	a, b := run(), run()

	opts := cmp.Options{
		cmpopts.IgnoreFields(benchmark.Row{}, "BruteTime", "DCTime"),
		cmpopts.EquateApprox(0, 1e-12),
	}
	if diff := cmp.Diff(a, b, opts); diff != "" {
		t.Errorf("rows differ between runs (-first +second):\n%s", diff)
	}
}

// TestRun_MatchesDirectCall checks each row against the generated data.
func TestRun_MatchesDirectCall(t *testing.T) {
	box := dataset.DefaultBox()
	rows, err := benchmark.Run(context.Background(), []int{100, 400},
		benchmark.WithRepeats(1), benchmark.WithDataset(dataset.KindUniform, box, 7),
		benchmark.WithLogger(quietLogger()))
	require.NoError(t, err)

	for i, r := range rows {
		pts, err := dataset.Generate(dataset.KindUniform, r.N, box, 7+int64(i))
		require.NoError(t, err)
		assert.Equal(t, closest.ClosestPairDistance(pts), r.DCDistance)
	}
}

// TestRun_OddClusters reports the generated size for an odd cluster count.
func TestRun_OddClusters(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	rows, err := benchmark.Run(context.Background(), []int{41},
		benchmark.WithRepeats(1), benchmark.WithDataset(dataset.KindClusters, dataset.DefaultBox(), 2),
		benchmark.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 41, rows[0].N)
	assert.True(t, rows[0].Agree)
	assert.Contains(t, buf.String(), "n=41")
}

// TestRun_BruteLimit skips brute force above the limit.
func TestRun_BruteLimit(t *testing.T) {
	rows, err := benchmark.Run(context.Background(), []int{50, 500},
		benchmark.WithRepeats(1), benchmark.WithBruteLimit(100), benchmark.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.False(t, rows[0].BruteSkipped)
	assert.True(t, rows[1].BruteSkipped)
	assert.True(t, rows[1].Agree)
	assert.True(t, math.IsNaN(rows[1].BruteDistance))
	assert.True(t, math.IsNaN(rows[1].Speedup()))
	assert.Zero(t, rows[1].BruteTime.Samples)
}

// TestRun_Errors covers the error paths.
func TestRun_Errors(t *testing.T) {
	_, err := benchmark.Run(context.Background(), nil)
	assert.ErrorIs(t, err, benchmark.ErrNoSizes)

	_, err = benchmark.Run(context.Background(), []int{10}, benchmark.WithRepeats(0))
	assert.ErrorIs(t, err, benchmark.ErrBadOption)

	_, err = benchmark.Run(context.Background(), []int{10}, benchmark.WithTolerance(math.NaN()))
	assert.ErrorIs(t, err, benchmark.ErrBadOption)

	_, err = benchmark.Run(context.Background(), []int{10}, benchmark.WithBruteLimit(-1))
	assert.ErrorIs(t, err, benchmark.ErrBadOption)

	rows, err := benchmark.Run(context.Background(), []int{10, -1}, benchmark.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, dataset.ErrBadSize)
	assert.Len(t, rows, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = benchmark.Run(ctx, []int{10})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_Logs writes one Info record per row.
func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	_, err := benchmark.Run(context.Background(), []int{20, 40, 80},
		benchmark.WithRepeats(1), benchmark.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(buf.String(), `msg="benchmark row"`))
	assert.Contains(t, buf.String(), "n=80")
	assert.NotContains(t, buf.String(), "level=WARN")
}

func TestAgree(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{"Equal", 3, 3, true},
		{"WithinRelative", 1e6, 1e6 + 1e-4, true},
		{"OutsideRelative", 1e6, 1e6 + 1, false},
		{"SmallAbsolute", 0, 1e-10, true},
		{"BothInf", math.Inf(1), math.Inf(1), true},
		{"OneInf", math.Inf(1), 5, false},
		{"NaN", math.NaN(), math.NaN(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, benchmark.Agree(tc.a, tc.b, 1e-9))
		})
	}
}

func TestRow_Speedup(t *testing.T) {
	r := benchmark.Row{
		BruteTime: benchmark.Stats{Mean: 10 * time.Millisecond},
		DCTime:    benchmark.Stats{Mean: 2 * time.Millisecond},
	}
	assert.InDelta(t, 5.0, r.Speedup(), 1e-12)

	r.DCTime.Mean = 0
	assert.True(t, math.IsNaN(r.Speedup()))
}

func TestWriteTable(t *testing.T) {
	rows := []benchmark.Row{
		{
			N: 1000, BruteDistance: 12.5, DCDistance: 12.5, Agree: true,
			BruteTime: benchmark.Stats{Mean: 40 * time.Millisecond},
			DCTime:    benchmark.Stats{Mean: 4 * time.Millisecond},
		},
		{N: 100000, BruteSkipped: true, BruteDistance: math.NaN(), DCDistance: 0.75, Agree: true,
			DCTime: benchmark.Stats{Mean: 90 * time.Millisecond}},
	}
	var buf bytes.Buffer
	require.NoError(t, benchmark.WriteTable(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "speedup")
	assert.Contains(t, lines[1], "12.500000")
	assert.Contains(t, lines[1], "10.0x")
	assert.Contains(t, lines[2], "skipped")
	assert.Contains(t, lines[2], "0.750000")
}

func TestTimer(t *testing.T) {
	tm := benchmark.StartTimer()
	time.Sleep(time.Millisecond)
	d := tm.Elapsed()

	assert.GreaterOrEqual(t, d, time.Millisecond)
	assert.GreaterOrEqual(t, tm.Elapsed(), d)
}
