// Package render draws closest-pair figures with gonum.org/v1/plot.
//
// Scatter plots a colored point set with any number of highlighted pairs
// (one per color for grouped runs) and, when given a trace.Recorder,
// overlays the dividing line and strip band of every recursive step. Steps
// turns the same recording into one numbered frame per divide, strip and
// new-minimum event, and SaveFrames writes them as closest_pair_step_NNN
// files. Timings draws benchmark rows on log-log axes. Save writes a figure
// as PNG, SVG or PDF depending on the file extension.
package render
