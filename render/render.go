package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/cpop/benchmark"
	"github.com/katalvlaran/cpop/geom"
	"github.com/katalvlaran/cpop/trace"
)

var (
	// ErrNoPoints is returned by Scatter for an empty point set.
	ErrNoPoints = errors.New("render: no points to draw")

	// ErrNoRows is returned by Timings when no row has a positive timing.
	ErrNoRows = errors.New("render: no timed rows to draw")
)

// Pair marks a closest pair on a scatter figure. A non-empty Label draws the
// line in that color group's color, otherwise the global pair color is used.
type Pair struct {
	A, B     geom.Point
	Distance float64
	Label    string
}

var (
	named = map[string]color.Color{
		"green":  color.RGBA{R: 0, G: 128, B: 0, A: 255},
		"black":  color.RGBA{A: 255},
		"purple": color.RGBA{R: 128, G: 0, B: 128, A: 255},
		"blue":   color.RGBA{R: 0, G: 0, B: 255, A: 255},
		"red":    color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}
	pairColor    = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	dividerColor = color.Gray{Y: 120}
	stripColor   = color.RGBA{R: 255, G: 200, B: 0, A: 40}
)

// colorFor maps a point label to a fill color. Unknown labels take the i-th
// plotutil palette entry.
func colorFor(label string, i int) color.Color {
	if c, ok := named[label]; ok {
		return c
	}

	return plotutil.Color(i)
}

// Scatter plots pts grouped by color and draws one line per pair. rec is
// optional; when set, the divider and strip band of every recursive step are
// overlaid.
func Scatter(title string, pts []geom.ColoredPoint, rec *trace.Recorder, pairs ...Pair) (*plot.Plot, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}

	p := newPlot(title)
	minX, maxX, minY, maxY := bounds(pts)

	if rec != nil {
		for _, e := range rec.Filter(trace.KindStrip) {
			if err := addBand(p, e, minX, maxX, minY, maxY); err != nil {
				return nil, err
			}
		}
		for _, e := range rec.Filter(trace.KindDivide) {
			if err := addDivider(p, e.MidX, minY, maxY, false); err != nil {
				return nil, err
			}
		}
	}

	palette, err := addPoints(p, pts)
	if err != nil {
		return nil, err
	}
	for _, pr := range pairs {
		c := color.Color(pairColor)
		legend := fmt.Sprintf("closest %.4g", pr.Distance)
		if pc, ok := palette[pr.Label]; ok && pr.Label != "" {
			c, legend = pc, fmt.Sprintf("%s %.4g", pr.Label, pr.Distance)
		}
		if err = addPair(p, pr, c, legend); err != nil {
			return nil, err
		}
	}
	placeLegend(p)

	return p, nil
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	return p
}

func placeLegend(p *plot.Plot) {
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
}

// addPoints adds one scatter per color group and returns the fill color
// chosen for each label.
func addPoints(p *plot.Plot, pts []geom.ColoredPoint) (map[string]color.Color, error) {
	groups := geom.GroupByColor(pts)
	palette := make(map[string]color.Color, len(groups))
	for i, g := range groups {
		c := g.Color
		xys := make(plotter.XYs, len(g.Points))
		for k, q := range g.Points {
			xys[k].X, xys[k].Y = q.X, q.Y
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter %q: %w", c, err)
		}
		palette[c] = colorFor(c, i)
		s.GlyphStyle.Color = palette[c]
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		if c != "" {
			p.Legend.Add(c, s)
		}
	}

	return palette, nil
}

func addPair(p *plot.Plot, pr Pair, c color.Color, legend string) error {
	l, err := plotter.NewLine(plotter.XYs{{X: pr.A.X, Y: pr.A.Y}, {X: pr.B.X, Y: pr.B.Y}})
	if err != nil {
		return fmt.Errorf("closest pair: %w", err)
	}
	l.Color = c
	l.Width = vg.Points(2)
	p.Add(l)
	p.Legend.Add(legend, l)

	return nil
}

// addBand draws the translucent strip |x - MidX| < Delta of a strip event,
// clipped to the data bounds. Empty or unbounded strips are skipped.
func addBand(p *plot.Plot, e trace.Event, minX, maxX, minY, maxY float64) error {
	if math.IsInf(e.Delta, 0) || e.Size == 0 {
		return nil
	}
	lo, hi := math.Max(minX, e.MidX-e.Delta), math.Min(maxX, e.MidX+e.Delta)
	band, err := plotter.NewPolygon(plotter.XYs{
		{X: lo, Y: minY}, {X: hi, Y: minY}, {X: hi, Y: maxY}, {X: lo, Y: maxY},
	})
	if err != nil {
		return fmt.Errorf("strip band: %w", err)
	}
	band.Color = stripColor
	band.LineStyle.Width = 0
	p.Add(band)

	return nil
}

// addDivider draws a dashed vertical line at x. The current divider of a
// step frame is drawn solid and thicker.
func addDivider(p *plot.Plot, x, minY, maxY float64, current bool) error {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: minY}, {X: x, Y: maxY}})
	if err != nil {
		return fmt.Errorf("divider: %w", err)
	}
	l.Color = dividerColor
	l.Width = vg.Points(0.5)
	l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	if current {
		l.Color = pairColor
		l.Width = vg.Points(1.5)
		l.Dashes = nil
	}
	p.Add(l)

	return nil
}

func bounds(pts []geom.ColoredPoint) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, q := range pts {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}

	return minX, maxX, minY, maxY
}

// Timings plots mean solver time against point count on log-log axes.
// Skipped brute-force sizes and non-positive timings are left out.
func Timings(title string, rows []benchmark.Row) (*plot.Plot, error) {
	var brute, dc plotter.XYs
	for _, r := range rows {
		if r.N <= 0 {
			continue
		}
		if !r.BruteSkipped && r.BruteTime.Mean > 0 {
			brute = append(brute, plotter.XY{X: float64(r.N), Y: seconds(r.BruteTime.Mean)})
		}
		if r.DCTime.Mean > 0 {
			dc = append(dc, plotter.XY{X: float64(r.N), Y: seconds(r.DCTime.Mean)})
		}
	}
	if len(brute)+len(dc) == 0 {
		return nil, ErrNoRows
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Number of points"
	p.Y.Label.Text = "Time (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		xys  plotter.XYs
	}{
		{"Brute force", brute},
		{"Divide & conquer", dc},
	}
	for i, s := range series {
		if len(s.xys) == 0 {
			continue
		}
		l, pts, err := plotter.NewLinePoints(s.xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1)
		pts.Color = plotutil.Color(i)
		pts.Shape = draw.CircleGlyph{}
		p.Add(l, pts)
		p.Legend.Add(s.name, l, pts)
	}
	// pad by a factor of two so single-size runs keep a positive log range
	lo, hi := span(append(append(plotter.XYs(nil), brute...), dc...))
	p.X.Min, p.X.Max = lo.X/2, hi.X*2
	p.Y.Min, p.Y.Max = lo.Y/2, hi.Y*2
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// span returns the component-wise minimum and maximum of xys.
func span(xys plotter.XYs) (lo, hi plotter.XY) {
	lo = plotter.XY{X: math.Inf(1), Y: math.Inf(1)}
	hi = plotter.XY{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range xys {
		lo.X, hi.X = math.Min(lo.X, v.X), math.Max(hi.X, v.X)
		lo.Y, hi.Y = math.Min(lo.Y, v.Y), math.Max(hi.Y, v.Y)
	}

	return lo, hi
}

func seconds(d time.Duration) float64 { return d.Seconds() }

// Save writes p to path, creating its directory. The extension selects the
// format (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
