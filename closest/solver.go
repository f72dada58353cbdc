package closest

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/cpop/geom"
)

// item is the solver's working copy of one input point.
type item struct {
	p   geom.Point
	idx int // position in the caller's slice
}

func (it item) ref() Ref { return Ref{Index: it.idx, Point: it.p} }

func byX(a, b item) int { return cmp.Compare(a.p.X, b.p.X) }

func byY(a, b item) int { return cmp.Compare(a.p.Y, b.p.Y) }

// toItems copies the coordinates of pts, keeping input order.
func toItems[P geom.Locator](pts []P) []item {
	items := make([]item, len(pts))
	for i := range pts {
		items[i] = item{p: geom.Of(pts[i]), idx: i}
	}

	return items
}

// solver encapsulates the mutable state of one run. Nothing here outlives
// the call that created it.
type solver struct {
	opts Options

	// scratch backs every strip of the run. A strip is built only after
	// both halves have returned, so one buffer of size n is enough.
	scratch []item

	// best pair of the whole run so far.
	bestD     float64
	bestA     item
	bestB     item
	bestFound bool
}

func newSolver(o Options, n int) *solver {
	return &solver{
		opts:    o,
		scratch: make([]item, 0, n),
		bestD:   math.Inf(1),
	}
}

// compare computes the distance of a pair, reports it, and updates the
// run-wide best on strict improvement only, so the first pair found wins ties.
// The first pair compared is always recorded, even at +Inf.
func (s *solver) compare(a, b item) float64 {
	d := geom.Distance(a.p, b.p)
	s.opts.OnCompare(a.ref(), b.ref(), d)
	if !s.bestFound || d < s.bestD {
		s.bestD, s.bestA, s.bestB, s.bestFound = d, a, b, true
		s.opts.OnNewMinimum(a.ref(), b.ref(), d)
	}

	return d
}

// result maps the run-wide best back onto the caller's points.
func result[P geom.Locator](s *solver, pts []P, d float64) Result[P] {
	if !s.bestFound {
		return noPair[P]()
	}

	return Result[P]{
		Distance: d,
		Found:    true,
		A:        pts[s.bestA.idx],
		B:        pts[s.bestB.idx],
		I:        s.bestA.idx,
		J:        s.bestB.idx,
	}
}

// noPair is the result for inputs with fewer than two points.
func noPair[P geom.Locator]() Result[P] {
	return Result[P]{Distance: math.Inf(1), I: -1, J: -1}
}

// invalid is the result returned alongside an error.
func invalid[P geom.Locator]() Result[P] {
	return Result[P]{Distance: math.NaN(), I: -1, J: -1}
}

// validate wraps geom.Validate into ErrInvalidInput.
func validate[P geom.Locator](pts []P) error {
	if err := geom.Validate(pts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}
