package closest_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cpop/closest"
	"github.com/katalvlaran/cpop/dataset"
)

// BenchmarkClosestPair measures the divide-and-conquer solver on uniform input.
func BenchmarkClosestPair(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		pts, err := dataset.Uniform(n, dataset.DefaultBox(), 1)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = closest.ClosestPair(pts)
			}
		})
	}
}

// BenchmarkBruteForce stops at 10k; 100k pairs would take minutes.
func BenchmarkBruteForce(b *testing.B) {
	for _, n := range []int{1_000, 10_000} {
		pts, err := dataset.Uniform(n, dataset.DefaultBox(), 1)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = closest.BruteForceDistance(pts)
			}
		})
	}
}

// BenchmarkClosestPair_Line is the degenerate shared-x input.
func BenchmarkClosestPair_Line(b *testing.B) {
	pts, err := dataset.Line(10_000, 0, 0, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = closest.ClosestPair(pts)
	}
}
