// Package closest finds the closest pair of points in the plane, with a
// quadratic brute-force scan and an O(n log n) divide-and-conquer solver.
//
// What
//
//   - BruteForceDistance / BruteForce: check every unordered pair.
//   - ClosestPairDistance / ClosestPair: sort once by x, split by index,
//     solve both halves, then merge through the strip around the split line.
//   - StripMerge: the merge step on its own.
//   - ByColor: one closest pair per label of a []geom.ColoredPoint.
//
// The solvers are generic over geom.Locator, so geom.Point, geom.ColoredPoint
// and any caller type exposing XY() are accepted as-is. Only coordinates are
// read; labels never influence a result.
//
// Why the strip is enough
//
//	Let δ = min(δ_left, δ_right). A pair closer than δ with one point on each
//	side must lie within δ of the dividing line. Sorted by y, such a partner
//	of point i sits less than δ above it, and at most seven points fit in the
//	δ×2δ box without being closer than δ to one another. The scan therefore
//	stops at the first point whose vertical gap reaches the current best.
//
// Determinism
//
//	Both sorts are stable, so points sharing an x (or y) keep their input
//	order and recursion splits are reproducible. The best pair is replaced
//	only on strict improvement: among equal distances the first pair found
//	wins. For BruteForce that is the first pair in index order.
//
// Hooks
//
//	Tracing is opt-in and never changes the result:
//
//		res, err := closest.ClosestPair(pts,
//			closest.WithOnDivide(func(midX float64, depth int) { /* ... */ }),
//			closest.WithOnStrip(func(midX, delta float64, size, depth int) { /* ... */ }),
//			closest.WithOnCompare(func(a, b closest.Ref, d float64) { /* ... */ }),
//			closest.WithOnNewMinimum(func(a, b closest.Ref, d float64) { /* ... */ }),
//		)
//
//	or pass a closest.Tracer (see package trace) with WithTracer.
//
// Complexity (n = len(points))
//
//   - BruteForce:  O(n²) time, O(n) space.
//   - ClosestPair: O(n log n) recursion, one y-sort per strip, O(n) space.
//     Recursion depth is ⌈log2 n⌉.
//
// Errors
//
//   - Fewer than two points is not an error: Distance = +Inf, Found = false.
//   - ErrInvalidInput        any NaN or ±Inf coordinate (wraps geom.ErrNonFinite).
//   - ErrOptionViolation     invalid Option (e.g. WithBaseCase(1)).
//
// The float-only entry points return NaN where the extended ones would
// return an error.
package closest
