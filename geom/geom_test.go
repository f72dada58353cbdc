package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpop/geom"
)

// TestDistance_Table checks a handful of exact distances.
func TestDistance_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Point
		want float64
	}{
		{"Same", geom.Pt(1, 1), geom.Pt(1, 1), 0},
		{"Triangle345", geom.Pt(0, 0), geom.Pt(3, 4), 5},
		{"Diagonal", geom.Pt(5, 1), geom.Pt(6, 2), math.Sqrt2},
		{"Horizontal", geom.Pt(-2, 7), geom.Pt(8, 7), 10},
		{"Large", geom.Pt(0, 0), geom.Pt(1e6, 1e6), 1e6 * math.Sqrt2},
		{"Huge", geom.Pt(0, 0), geom.Pt(1e200, 0), 1e200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geom.Distance(tc.a, tc.b), 1e-9*math.Max(1, tc.want))
			assert.InDelta(t, tc.want, geom.Dist(tc.a, tc.b), 1e-9*math.Max(1, tc.want))
		})
	}
}

// TestColoredPoint_ActsAsPoint verifies the label never affects distance.
func TestColoredPoint_ActsAsPoint(t *testing.T) {
	a := geom.Colored("green", 5, 1)
	b := geom.Colored("black", 6, 2)

	assert.Equal(t, geom.Distance(a.Point, b.Point), geom.Dist(a, b))
	assert.Equal(t, geom.Pt(5, 1), geom.Of(a))
	assert.Equal(t, "green(5, 1)", a.String())
}

// TestPoints_Copies ensures Points returns an independent slice.
func TestPoints_Copies(t *testing.T) {
	in := []geom.ColoredPoint{geom.Colored("a", 1, 2), geom.Colored("b", 3, 4)}
	out := geom.Points(in)

	require.Len(t, out, 2)
	out[0] = geom.Pt(9, 9)
	assert.Equal(t, 1.0, in[0].X, "input must not alias the result")
}

// TestValidate_NonFinite rejects NaN and infinities and reports the index.
func TestValidate_NonFinite(t *testing.T) {
	cases := []struct {
		name string
		pts  []geom.Point
		bad  bool
	}{
		{"Empty", nil, false},
		{"Finite", []geom.Point{geom.Pt(0, 0), geom.Pt(-1e6, 1e6)}, false},
		{"NaNX", []geom.Point{geom.Pt(0, 0), geom.Pt(math.NaN(), 0)}, true},
		{"PosInfY", []geom.Point{geom.Pt(0, math.Inf(1))}, true},
		{"NegInfX", []geom.Point{geom.Pt(math.Inf(-1), 3)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := geom.Validate(tc.pts)
			if tc.bad {
				assert.True(t, errors.Is(err, geom.ErrNonFinite), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	err := geom.Validate([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(math.NaN(), 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point 2")
}

// TestGroupByColor keeps first-seen label order and in-group order.
func TestGroupByColor(t *testing.T) {
	pts := []geom.ColoredPoint{
		geom.Colored("red", 1, 1),
		geom.Colored("blue", 2, 2),
		geom.Colored("red", 3, 3),
		geom.Colored("green", 4, 4),
		geom.Colored("blue", 5, 5),
	}
	groups := geom.GroupByColor(pts)

	assert.Equal(t, []string{"red", "blue", "green"}, geom.Colors(groups))
	assert.Equal(t, []geom.ColoredPoint{pts[0], pts[2]}, groups[0].Points)
	assert.Equal(t, []geom.ColoredPoint{pts[1], pts[4]}, groups[1].Points)
	assert.Len(t, groups[2].Points, 1)

	// every grouped point sits at its recorded origin
	for _, g := range groups {
		require.Len(t, g.Index, len(g.Points))
		for k, idx := range g.Index {
			assert.Equal(t, pts[idx], g.Points[k])
		}
	}
	assert.Equal(t, []int{0, 2}, groups[0].Index)
	assert.Equal(t, []int{3}, groups[2].Index)
	assert.Empty(t, geom.GroupByColor(nil))
}
