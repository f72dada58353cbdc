package closest

import (
	"math"
	"slices"

	"github.com/katalvlaran/cpop/geom"
)

// StripMerge returns min(delta, closest distance among strip).
//
// Only pairs whose vertical gap is below the current best are examined:
// after sorting by y, the inner scan for point i stops at the first j with
// y[j] - y[i] ≥ best. For a strip around a dividing line with half-width
// delta, packing bounds the surviving candidates per point to 7, but the
// scan is bounded by the gap condition, never by a fixed count, so it stays
// exact when points coincide.
//
// The caller's slice is not reordered. NaN coordinates yield NaN.
//
// Complexity: O(k log k) for the sort plus O(k) candidate checks for a
// well-formed strip of k points; O(k²) when all points share one y.
func StripMerge[P geom.Locator](strip []P, delta float64) float64 {
	if err := geom.Validate(strip); err != nil || math.IsNaN(delta) {
		return math.NaN()
	}
	s := newSolver(DefaultOptions(), 0)

	return math.Min(delta, s.stripMerge(toItems(strip), delta))
}

// stripMerge sorts strip by y in place and scans it with the gap cut-off.
func (s *solver) stripMerge(strip []item, delta float64) float64 {
	slices.SortStableFunc(strip, byY)

	best := delta
	for i := 0; i < len(strip); i++ {
		for j := i + 1; j < len(strip) && strip[j].p.Y-strip[i].p.Y < best; j++ {
			if d := s.compare(strip[i], strip[j]); d < best {
				best = d
			}
		}
	}

	return best
}
