package closest

import (
	"math"

	"github.com/katalvlaran/cpop/geom"
)

// BruteForceDistance returns the minimum pairwise distance of pts by
// checking every unordered pair.
//
// Returns +Inf for fewer than two points and NaN if any coordinate is not
// finite (use BruteForce to get the error instead).
//
// Complexity: O(n²) time, O(n) extra space.
func BruteForceDistance[P geom.Locator](pts []P) float64 {
	r, err := BruteForce(pts)
	if err != nil {
		return math.NaN()
	}

	return r.Distance
}

// BruteForce scans all pairs (i, j), i < j, in input order and returns the
// minimum distance together with the first pair that achieves it.
//
// Hooks: OnCompare for every pair, OnNewMinimum on every strict improvement.
// OnDivide and OnStrip are never called. BaseCase is ignored.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrInvalidInput (wrapping geom.ErrNonFinite) for NaN/Inf coordinates.
func BruteForce[P geom.Locator](pts []P, opts ...Option) (Result[P], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return invalid[P](), err
	}
	if err = validate(pts); err != nil {
		return invalid[P](), err
	}
	if len(pts) < 2 {
		return noPair[P](), nil
	}

	s := newSolver(o, 0)
	d := s.brute(toItems(pts))

	return result(s, pts, d), nil
}

// brute returns the minimum distance over all pairs of pts (+Inf if len < 2).
func (s *solver) brute(pts []item) float64 {
	best := math.Inf(1)
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if d := s.compare(pts[i], pts[j]); d < best {
				best = d
			}
		}
	}

	return best
}
