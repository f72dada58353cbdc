package render

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cpop/geom"
	"github.com/katalvlaran/cpop/trace"
)

// ErrNoSteps is returned by Steps when the recorder holds no divide, strip or
// new-minimum event.
var ErrNoSteps = errors.New("render: no steps recorded")

// StepKinds are the event kinds that become frames. Compare events are not
// drawn.
var StepKinds = []trace.Kind{trace.KindDivide, trace.KindStrip, trace.KindNewMinimum}

// Steps returns one figure per divide, strip and new-minimum event of rec,
// in event order. Each frame shows:
//   - every point, colored by label;
//   - the dividers of earlier divide events, dashed;
//   - the divider of the current event, solid;
//   - the strip band, on strip frames;
//   - the best pair found up to and including the current event.
//
// Frame k is titled "Step k: ...", counting from 1.
func Steps(pts []geom.ColoredPoint, rec *trace.Recorder) ([]*plot.Plot, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	if rec == nil {
		return nil, ErrNoSteps
	}
	events := rec.Filter(StepKinds...)
	if len(events) == 0 {
		return nil, ErrNoSteps
	}

	minX, maxX, minY, maxY := bounds(pts)
	var (
		dividers []float64
		best     *trace.Event
		frames   = make([]*plot.Plot, 0, len(events))
	)
	for k := range events {
		e := events[k]
		if e.Kind == trace.KindNewMinimum {
			best = &events[k]
		}

		p := newPlot(stepTitle(k+1, e, best))
		if e.Kind == trace.KindStrip {
			if err := addBand(p, e, minX, maxX, minY, maxY); err != nil {
				return nil, err
			}
		}
		for _, x := range dividers {
			if err := addDivider(p, x, minY, maxY, false); err != nil {
				return nil, err
			}
		}
		if e.Kind != trace.KindNewMinimum {
			if err := addDivider(p, e.MidX, minY, maxY, true); err != nil {
				return nil, err
			}
		}
		if e.Kind == trace.KindDivide {
			dividers = append(dividers, e.MidX)
		}

		if _, err := addPoints(p, pts); err != nil {
			return nil, err
		}
		if best != nil {
			pr := Pair{A: best.A.Point, B: best.B.Point, Distance: best.D}
			if err := addPair(p, pr, pairColor, fmt.Sprintf("best %.4g", best.D)); err != nil {
				return nil, err
			}
		}
		placeLegend(p)
		frames = append(frames, p)
	}

	return frames, nil
}

func stepTitle(k int, e trace.Event, best *trace.Event) string {
	var what string
	switch e.Kind {
	case trace.KindDivide:
		what = fmt.Sprintf("divide at x=%.4g (depth %d)", e.MidX, e.Depth)
	case trace.KindStrip:
		what = fmt.Sprintf("strip |x-%.4g| < %.4g, %d points (depth %d)", e.MidX, e.Delta, e.Size, e.Depth)
	default:
		what = fmt.Sprintf("new minimum #%d-#%d", e.A.Index, e.B.Index)
	}
	d := math.Inf(1)
	if best != nil {
		d = best.D
	}

	return fmt.Sprintf("Step %d: %s\nbest distance: %.4f", k, what, d)
}

// SaveFrames writes frames to dir as closest_pair_step_<k>.<ext>, k counting
// from 1, and returns the written paths.
func SaveFrames(frames []*plot.Plot, dir, ext string, width, height vg.Length) ([]string, error) {
	paths := make([]string, 0, len(frames))
	for k, p := range frames {
		path := filepath.Join(dir, fmt.Sprintf("closest_pair_step_%03d.%s", k+1, ext))
		if err := Save(p, path, width, height); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
