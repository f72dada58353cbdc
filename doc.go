// Package cpop finds the closest pair of points in the plane, and shows how
// it does it.
//
// 🚀 What is cpop?
//
//	A small, dependency-light toolkit around one classic problem:
//		• Core solvers: brute force O(n²) and divide & conquer O(n log n)
//		• Hooks: observe every comparison, split and strip (closest.WithTracer)
//		• Datasets: seeded generators, the colored sample, YAML/JSON/CSV files
//		• Benchmarks: timing tables and agreement checks
//		• Figures: scatter plots with dividing lines, log-log timing charts
//		• CLI: cpop solve / cpop bench / cpop config
//
// ✨ Why cpop?
//
//   - Generic – any type with XY() (x, y float64) is a valid point
//   - Deterministic – stable sorts, index splits, first pair wins ties
//   - Pure library core – solvers never log and keep no package state
//
// Packages:
//
//	geom/  Point, ColoredPoint, Locator, distance & validation
//	closest/  BruteForce, ClosestPair, StripMerge, ByColor, hooks
//	dataset/  generators, sample set, point-file readers
//	trace/  Recorder and slog Logger tracers
//	benchmark/  timing harness over growing sizes
//	render/  gonum/plot figures
//	cmd/cpop/  command-line interface
//
// Quick ASCII example:
//
//	  y
//	  │   ·        ·
//	  │        ·
//	  │  ·──·          ·
//	  └──────────────── x
//
//	the joined pair is the answer; the strip check finds it even when the
//	dividing line runs between its two points.
//
//	go install github.com/katalvlaran/cpop/cmd/cpop@latest
package cpop
