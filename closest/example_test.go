package closest_test

import (
	"fmt"

	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
	"github.com/katalvlaran/cpop/geom"
)

func ExampleClosestPair() {
	pts := []geom.Point{geom.Pt(2, 3), geom.Pt(5, 1), geom.Pt(6, 2), geom.Pt(7, 7), geom.Pt(20, 24)}

	res, err := closest.ClosestPair(pts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)
	// Output: 1.414214 between #1 (5, 1) and #2 (6, 2)
}

func ExampleBruteForceDistance() {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(10, 10)}
	fmt.Println(closest.BruteForceDistance(pts))
	fmt.Println(closest.BruteForceDistance(pts[:1]))
	// Output:
	// 5
	// +Inf
}

func ExampleByColor() {
	res, err := closest.ByColor(dataset.Sample())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range res {
		fmt.Printf("%-6s %.4f\n", r.Color, r.Distance)
	}
	// Output:
	// green  1.4142
	// black  13.4536
	// purple 5.0000
	// blue   12.0830
	// red    10.0499
}

func ExampleStripMerge() {
	strip := []geom.Point{geom.Pt(4.9, 0), geom.Pt(5.1, 0.1), geom.Pt(5, 3)}
	fmt.Printf("%.4f\n", closest.StripMerge(strip, 1))
	// Output: 0.2236
}
