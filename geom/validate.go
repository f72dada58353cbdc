package geom

import (
	"fmt"
	"math"
)

// IsFinite reports whether both coordinates of p are finite.
func IsFinite[P Locator](p P) bool {
	x, y := p.XY()
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// Validate returns ErrNonFinite, annotated with the first offending index,
// if any point has a NaN or infinite coordinate.
//
// Complexity: O(n).
func Validate[P Locator](pts []P) error {
	for i := range pts {
		if !IsFinite(pts[i]) {
			x, y := pts[i].XY()
			return fmt.Errorf("%w: point %d = (%v, %v)", ErrNonFinite, i, x, y)
		}
	}

	return nil
}
