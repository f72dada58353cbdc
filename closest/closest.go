package closest

import (
	"math"
	"slices"

	"github.com/katalvlaran/cpop/geom"
)

// ClosestPairDistance returns the minimum pairwise distance of pts using
// divide and conquer.
//
// Returns +Inf for fewer than two points and NaN if any coordinate is not
// finite (use ClosestPair to get the error instead).
//
// Complexity: O(n log n) for the recursion plus one y-sort per strip,
// O(n log² n) in the worst case; O(n) extra space.
func ClosestPairDistance[P geom.Locator](pts []P) float64 {
	r, err := ClosestPair(pts)
	if err != nil {
		return math.NaN()
	}

	return r.Distance
}

// ClosestPair finds the closest pair of pts by divide and conquer and
// returns its distance, the pair and the pair's indices in pts.
//
// Steps:
//  1. Copy pts and stable-sort the copy by x (ties keep input order).
//  2. solve(subset):
//     - |subset| ≤ BaseCase → brute force;
//     - split by index at mid = n/2 into [0, mid) and [mid, n);
//     - δ = min(solve(left), solve(right));
//     - strip = points of the whole subset with |x - x[mid]| < δ;
//     - return min(δ, StripMerge(strip, δ)).
//
// The split is by position in the x-sorted slice, not by coordinate value,
// so recursion depth is ⌈log2 n⌉ even when many points share an x.
//
// pts is never modified. All state lives in the call, so concurrent calls on
// the same read-only slice are safe.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrInvalidInput (wrapping geom.ErrNonFinite) for NaN/Inf coordinates.
func ClosestPair[P geom.Locator](pts []P, opts ...Option) (Result[P], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return invalid[P](), err
	}

	return closestPair(pts, o)
}

// closestPair runs the solver with already-built options.
func closestPair[P geom.Locator](pts []P, o Options) (Result[P], error) {
	if err := validate(pts); err != nil {
		return invalid[P](), err
	}
	if len(pts) < 2 {
		return noPair[P](), nil
	}

	items := toItems(pts)
	slices.SortStableFunc(items, byX)

	s := newSolver(o, len(items))
	d := s.solve(items, 0)

	return result(s, pts, d), nil
}

// solve returns the minimum distance within pts, which must be sorted by x.
func (s *solver) solve(pts []item, depth int) float64 {
	n := len(pts)
	if n <= s.opts.BaseCase {
		return s.brute(pts)
	}

	mid := n / 2
	midX := pts[mid].p.X
	s.opts.OnDivide(midX, depth)

	dl := s.solve(pts[:mid], depth+1)
	dr := s.solve(pts[mid:], depth+1)
	delta := math.Min(dl, dr)

	strip := s.scratch[:0]
	for _, it := range pts {
		if math.Abs(it.p.X-midX) < delta {
			strip = append(strip, it)
		}
	}
	s.opts.OnStrip(midX, delta, len(strip), depth)

	return math.Min(delta, s.stripMerge(strip, delta))
}
