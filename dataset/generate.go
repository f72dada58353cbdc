package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cpop/geom"
)

// Uniform returns n points with float coordinates drawn uniformly from box.
//
// Complexity: O(n).
func Uniform(n int, box Box, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}

	r := rngFromSeed(seed)
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(uniform(r, box.MinX, box.MaxX), uniform(r, box.MinY, box.MaxY))
	}

	return pts, nil
}

// UniformInt returns n points with integer coordinates drawn uniformly from
// the integers inside box, bounds included. Coincident points are likely
// once n approaches the number of lattice points.
//
// Complexity: O(n).
func UniformInt(n int, box Box, seed int64) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}
	lx, hx := math.Ceil(box.MinX), math.Floor(box.MaxX)
	ly, hy := math.Ceil(box.MinY), math.Floor(box.MaxY)
	if hx < lx || hy < ly {
		return nil, fmt.Errorf("%w: no integer point in %+v", ErrBadBounds, box)
	}

	r := rngFromSeed(seed)
	spanX, spanY := int64(hx-lx)+1, int64(hy-ly)+1
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(lx+float64(r.Int63n(spanX)), ly+float64(r.Int63n(spanY)))
	}

	return pts, nil
}

// Clusters returns two jittered square grids of perCluster points each, far
// apart on the x-axis, plus a bridge pair placed between them so that, once
// sorted by x, the pair sits on both sides of the median index.
//
// Grid cells are spacing wide and jitter stays below spacing/4, so any two
// cluster points are at least spacing/2 apart, while the bridge pair is
// spacing/10 apart. The bridge pair is therefore the unique closest pair and
// is only visible to the merge step.
//
// The returned slice is ordered: left cluster, bridge pair, right cluster.
// Bridge holds the indices of the two bridge points.
func Clusters(perCluster int, spacing float64, seed int64) (pts []geom.Point, bridge [2]int, err error) {
	if perCluster < 1 || spacing <= 0 || math.IsInf(spacing, 0) || math.IsNaN(spacing) {
		return nil, bridge, fmt.Errorf("%w: perCluster=%d spacing=%v", ErrBadSize, perCluster, spacing)
	}

	r := rngFromSeed(seed)
	side := int(math.Ceil(math.Sqrt(float64(perCluster))))
	width := float64(side) * spacing
	gapX := 10 * width

	cluster := func(originX float64) []geom.Point {
		out := make([]geom.Point, 0, perCluster)
		for k := 0; k < perCluster; k++ {
			cx := originX + spacing/2 + float64(k%side)*spacing
			cy := spacing/2 + float64(k/side)*spacing
			jx := uniform(r, -spacing/4, spacing/4)
			jy := uniform(r, -spacing/4, spacing/4)
			out = append(out, geom.Pt(cx+jx, cy+jy))
		}
		return out
	}

	left := cluster(0)
	midX := width + gapX/2
	midY := width / 2
	right := cluster(width + gapX)

	pts = make([]geom.Point, 0, 2*perCluster+2)
	pts = append(pts, left...)
	bridge = [2]int{len(pts), len(pts) + 1}
	pts = append(pts,
		geom.Pt(midX-spacing/20, midY),
		geom.Pt(midX+spacing/20, midY),
	)
	pts = append(pts, right...)

	return pts, bridge, nil
}

// Identical returns n copies of p.
func Identical(n int, p geom.Point) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = p
	}

	return pts, nil
}

// Line returns n points on the vertical line x = x0, starting at y0 and
// stepping by step. Every point shares one x, the worst case for the strip.
func Line(n int, x0, y0, step float64) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(x0, y0+float64(i)*step)
	}

	return pts, nil
}

// Generate dispatches on kind and always returns exactly n points.
// Parameters that a kind does not use are ignored: clusters derive their
// spacing from the box width, identical points sit at the box centre, and
// the line runs up the box centre. For an odd n the clusters layout gets
// one extra point on its centre line, far from the bridge pair.
func Generate(kind Kind, n int, box Box, seed int64) ([]geom.Point, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case KindUniform:
		return Uniform(n, box, seed)
	case KindUniformInt:
		return UniformInt(n, box, seed)
	case KindClusters:
		if n < 4 {
			return nil, fmt.Errorf("%w: clusters need n ≥ 4 (got %d)", ErrBadSize, n)
		}
		per := (n - 2) / 2
		side := math.Ceil(math.Sqrt(float64(per)))
		w := box.MaxX - box.MinX
		pts, _, err := Clusters(per, w/(12*side), seed)
		if err != nil {
			return nil, err
		}
		if n%2 == 1 {
			// on the centre line, half a cluster width above the bridge
			pts = append(pts, geom.Pt(w/2, w/12))
		}
		for i := range pts {
			pts[i] = pts[i].Add(geom.Pt(box.MinX, box.MinY))
		}
		return pts, nil
	case KindIdentical:
		return Identical(n, geom.Pt((box.MinX+box.MaxX)/2, (box.MinY+box.MaxY)/2))
	case KindLine:
		step := (box.MaxY - box.MinY) / math.Max(1, float64(n))
		return Line(n, (box.MinX+box.MaxX)/2, box.MinY, step)
	default:
		return nil, fmt.Errorf("%w: generator %q", ErrUnknownFormat, kind)
	}
}
