package trace_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
	"github.com/katalvlaran/cpop/geom"
	"github.com/katalvlaran/cpop/trace"
)

// TestRecorder_FivePoints follows the whole run on a tiny input.
func TestRecorder_FivePoints(t *testing.T) {
	pts := []geom.Point{geom.Pt(2, 3), geom.Pt(5, 1), geom.Pt(6, 2), geom.Pt(7, 7), geom.Pt(20, 24)}
	rec := trace.NewRecorder()

	res, err := closest.ClosestPair(pts, closest.WithTracer(rec))
	require.NoError(t, err)

	// one split at the third point by x, whose x is 6
	divides := rec.Filter(trace.KindDivide)
	require.Len(t, divides, 1)
	assert.Equal(t, 6.0, divides[0].MidX)
	assert.Equal(t, 0, divides[0].Depth)

	strips := rec.Filter(trace.KindStrip)
	require.Len(t, strips, 1)
	assert.InDelta(t, 3.605551, strips[0].Delta, 1e-6)
	assert.Equal(t, 3, strips[0].Size)

	last, ok := rec.Last(trace.KindNewMinimum)
	require.True(t, ok)
	assert.Equal(t, res.Distance, last.D)
	assert.Equal(t, 1, last.A.Index)
	assert.Equal(t, 2, last.B.Index)
	assert.Equal(t, 0, rec.MaxDepth())

	// brute halves: 1 + 3 pairs, strip: 3 pairs at most
	assert.GreaterOrEqual(t, len(rec.Filter(trace.KindCompare)), 5)
}

// TestRecorder_Options checks compare filtering, the cap and Reset.
func TestRecorder_Options(t *testing.T) {
	pts, err := dataset.Uniform(200, dataset.DefaultBox(), 5)
	require.NoError(t, err)

	quiet := trace.NewRecorder(trace.WithoutCompares())
	_, err = closest.ClosestPair(pts, closest.WithTracer(quiet))
	require.NoError(t, err)
	assert.Empty(t, quiet.Filter(trace.KindCompare))
	assert.NotEmpty(t, quiet.Filter(trace.KindDivide, trace.KindStrip))

	capped := trace.NewRecorder(trace.WithLimit(10))
	_, err = closest.ClosestPair(pts, closest.WithTracer(capped))
	require.NoError(t, err)
	assert.Equal(t, 10, capped.Len())
	assert.Positive(t, capped.Dropped())

	events := capped.Events()
	events[0].D = -1
	assert.NotEqual(t, -1.0, capped.Events()[0].D, "Events returns a copy")

	capped.Reset()
	assert.Zero(t, capped.Len())
	assert.Zero(t, capped.Dropped())
	assert.Equal(t, -1, capped.MaxDepth())
	_, ok := capped.Last(trace.KindStrip)
	assert.False(t, ok)
}

// TestRecorder_BruteForce sees only pair events.
func TestRecorder_BruteForce(t *testing.T) {
	rec := trace.NewRecorder()
	_, err := closest.BruteForce([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(3, 3)}, closest.WithTracer(rec))
	require.NoError(t, err)

	assert.Len(t, rec.Filter(trace.KindCompare), 3)
	assert.Empty(t, rec.Filter(trace.KindDivide, trace.KindStrip))
}

// TestLogger writes structured records for every hook.
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pts := []geom.Point{geom.Pt(2, 3), geom.Pt(5, 1), geom.Pt(6, 2), geom.Pt(7, 7), geom.Pt(20, 24)}
	_, err := closest.ClosestPair(pts, closest.WithTracer(trace.NewLogger(l)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=divide")
	assert.Contains(t, out, "mid_x=6")
	assert.Contains(t, out, "msg=strip")
	assert.Contains(t, out, `msg="new minimum"`)
	assert.Contains(t, out, "i=1")
	assert.Contains(t, out, `a="(5, 1)"`)
	assert.Contains(t, out, "level=DEBUG")
}

// TestLogger_Level respects the handler threshold.
func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}

	_, err := closest.ClosestPair(pts, closest.WithTracer(trace.NewLogger(l)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = closest.ClosestPair(pts, closest.WithTracer(trace.NewLogger(l).WithLevel(slog.LevelInfo)))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "level=INFO"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "compare", trace.KindCompare.String())
	assert.Equal(t, "new-minimum", trace.KindNewMinimum.String())
	assert.Equal(t, "divide", trace.KindDivide.String())
	assert.Equal(t, "strip", trace.KindStrip.String())
	assert.Equal(t, "kind(9)", trace.Kind(9).String())

	e := trace.Event{Kind: trace.KindStrip, MidX: 6, Delta: 2.5, Size: 3, Depth: 1}
	assert.Equal(t, "strip depth=1 x=6 delta=2.5 size=3", e.String())
}

// TestMulti delivers the same stream to every tracer.
func TestMulti(t *testing.T) {
	pts, err := dataset.Uniform(100, dataset.DefaultBox(), 8)
	require.NoError(t, err)

	a, b := trace.NewRecorder(), trace.NewRecorder(trace.WithoutCompares())
	_, err = closest.ClosestPair(pts, closest.WithTracer(trace.Multi(a, nil, b)))
	require.NoError(t, err)

	assert.Equal(t, a.Filter(trace.KindDivide, trace.KindStrip, trace.KindNewMinimum), b.Events())
	assert.Greater(t, a.Len(), b.Len())
}

// TestMulti_TypedNil skips nil pointers of the package's own tracers.
func TestMulti_TypedNil(t *testing.T) {
	var (
		noRec *trace.Recorder
		noLog *trace.Logger
	)
	rec := trace.NewRecorder(trace.WithoutCompares())
	tr := trace.Multi(noRec, rec, noLog)

	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(1, 1), geom.Pt(9, 9)}
	require.NotPanics(t, func() {
		_, err := closest.ClosestPair(pts, closest.WithTracer(tr))
		require.NoError(t, err)
	})
	last, ok := rec.Last(trace.KindNewMinimum)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, last.D, 1e-15)
}
