package dataset

import "github.com/katalvlaran/cpop/geom"

// Sample returns the 20-point colored demonstration set on the 64×64 board.
// Its closest pair overall is (5,1)-(6,2) at √2.
func Sample() []geom.ColoredPoint {
	return []geom.ColoredPoint{
		geom.Colored("green", 2, 3), geom.Colored("green", 5, 1), geom.Colored("green", 6, 2),
		geom.Colored("green", 7, 7), geom.Colored("green", 20, 24),
		geom.Colored("black", 3, 5), geom.Colored("black", 13, 14), geom.Colored("black", 27, 25),
		geom.Colored("purple", 9, 6), geom.Colored("purple", 12, 10), geom.Colored("purple", 17, 21),
		geom.Colored("purple", 18, 15),
		geom.Colored("blue", 8, 15), geom.Colored("blue", 19, 20), geom.Colored("blue", 31, 33),
		geom.Colored("blue", 40, 50),
		geom.Colored("red", 12, 30), geom.Colored("red", 22, 29), geom.Colored("red", 25, 18),
		geom.Colored("red", 35, 40),
	}
}

// Plain wraps bare points as ColoredPoints sharing one label.
func Plain(pts []geom.Point, color string) []geom.ColoredPoint {
	out := make([]geom.ColoredPoint, len(pts))
	for i, p := range pts {
		out[i] = geom.ColoredPoint{Point: p, Color: color}
	}

	return out
}
