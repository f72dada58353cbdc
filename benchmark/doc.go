// Package benchmark compares the brute-force and divide-and-conquer
// closest-pair solvers on generated datasets of growing size.
//
// For each size Run generates one dataset, times each solver Repeats times,
// summarizes the samples with gonum/stat, and checks that both solvers
// returned the same distance. Brute force is quadratic; WithBruteLimit keeps
// it off the largest sizes.
//
// Rows feed WriteTable for terminal output and render.Timings for a log-log
// chart.
package benchmark
