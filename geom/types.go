package geom

import (
	"errors"
	"fmt"
)

// ErrNonFinite indicates that a coordinate is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: coordinate is not finite")

// Locator is implemented by anything with planar coordinates.
type Locator interface {
	XY() (x, y float64)
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// XY implements Locator.
func (p Point) XY() (x, y float64) { return p.X, p.Y }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// ColoredPoint is a Point carrying a categorical label.
// Distance code sees only the embedded Point.
type ColoredPoint struct {
	Point
	Color string
}

// Colored builds a ColoredPoint.
func Colored(color string, x, y float64) ColoredPoint {
	return ColoredPoint{Point: Point{X: x, Y: y}, Color: color}
}

// String renders the point as "color(x, y)".
func (c ColoredPoint) String() string { return c.Color + c.Point.String() }

// Of returns the coordinate view of any Locator.
func Of[P Locator](p P) Point {
	x, y := p.XY()
	return Point{X: x, Y: y}
}

// Points strips a slice of Locators down to bare coordinates.
// The result is a fresh slice; the input is not modified.
func Points[P Locator](pts []P) []Point {
	out := make([]Point, len(pts))
	for i := range pts {
		out[i] = Of(pts[i])
	}

	return out
}
