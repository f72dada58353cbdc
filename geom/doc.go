// Package geom holds the planar primitives shared by every cpop package:
// the Point value type, the Locator coordinate capability, the labeled
// ColoredPoint, and the Euclidean distance.
//
// What
//
//   - Point is an immutable (X, Y) pair of float64 with value semantics.
//   - Locator is the only thing the algorithms ever ask of an input element:
//     XY() (x, y float64). Point satisfies it, and so does any type that
//     embeds a Point.
//   - ColoredPoint composes a Point with a categorical Color label. The label
//     is carried alongside the coordinates and is never read by distance code.
//   - Distance / Dist compute sqrt(dx² + dy²) with math.Hypot, so squaring
//     a large finite difference never overflows.
//   - Validate rejects NaN and ±Inf coordinates with ErrNonFinite.
//
// Usage
//
//	a := geom.Point{X: 0, Y: 0}
//	b := geom.Point{X: 3, Y: 4}
//	d := geom.Distance(a, b) // 5
//
//	pts := []geom.ColoredPoint{geom.Colored("green", 5, 1), geom.Colored("red", 6, 2)}
//	if err := geom.Validate(pts); err != nil {
//		// errors.Is(err, geom.ErrNonFinite)
//	}
package geom
