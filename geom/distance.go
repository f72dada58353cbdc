package geom

import "math"

// Distance returns the Euclidean distance between a and b.
// It does not overflow for large but finite coordinates.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Dist returns the Euclidean distance between two Locators.
func Dist[P, Q Locator](a P, b Q) float64 {
	ax, ay := a.XY()
	bx, by := b.XY()
	return math.Hypot(ax-bx, ay-by)
}
