package closest

import "github.com/katalvlaran/cpop/geom"

// ColorResult is the closest pair within one color group. I and J index the
// full input slice passed to ByColor, not the group.
type ColorResult struct {
	Color string
	Size  int
	Result[geom.ColoredPoint]
}

// ByColor runs ClosestPair independently on each color group of pts and
// returns one result per color, in first-seen color order. Groups with a
// single point yield a result with Found == false.
//
// Hook callbacks see Ref.Index values of the full input slice.
//
// Errors: as ClosestPair; the whole input is validated up front.
func ByColor(pts []geom.ColoredPoint, opts ...Option) ([]ColorResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validate(pts); err != nil {
		return nil, err
	}

	groups := geom.GroupByColor(pts)
	out := make([]ColorResult, 0, len(groups))
	for _, g := range groups {
		r, err := closestPair(g.Points, remapped(o, g.Index))
		if err != nil {
			return nil, err
		}
		if r.Found {
			r.I, r.J = g.Index[r.I], g.Index[r.J]
		}
		out = append(out, ColorResult{Color: g.Color, Size: len(g.Points), Result: r})
	}

	return out, nil
}

// remapped wraps the pair hooks of o so that group-local indices are
// reported as positions in the original slice.
func remapped(o Options, idx []int) Options {
	onCompare, onNewMin := o.OnCompare, o.OnNewMinimum
	fix := func(r Ref) Ref {
		r.Index = idx[r.Index]
		return r
	}
	o.OnCompare = func(a, b Ref, d float64) { onCompare(fix(a), fix(b), d) }
	o.OnNewMinimum = func(a, b Ref, d float64) { onNewMin(fix(a), fix(b), d) }

	return o
}
