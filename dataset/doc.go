// Package dataset supplies point sets to the closest-pair solvers and their
// benchmarks: seeded random generators, a few adversarial shapes, the colored
// demonstration set, and readers for YAML/JSON and CSV point files.
//
// Generators
//
//   - Uniform / UniformInt: n points uniform in a Box (float or lattice coordinates).
//   - Clusters:  two far grids bridged by one close pair across the x-median.
//   - Identical: n copies of one point (answer is exactly 0).
//   - Line:      n points sharing one x (every point lands in every strip).
//   - Generate:  dispatch on a Kind, for configuration-driven callers.
//
// All generators are deterministic per seed; seed 0 maps to a fixed default.
//
// Files
//
//	points:
//	  - {x: 2, y: 3, color: green}
//	  - {x: 5, y: 1, color: green}
//
// A bare sequence of the same records, the equivalent JSON, or CSV rows
// "x,y[,color]" are accepted too. Datasets are read, never written.
package dataset
