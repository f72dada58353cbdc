package geom

// Group is the run of points sharing one Color label. Index[k] is the
// position of Points[k] in the slice passed to GroupByColor.
type Group struct {
	Color  string
	Points []ColoredPoint
	Index  []int
}

// GroupByColor splits pts by label. Groups are returned in the order in which
// each label first appears, so iteration is deterministic. Points keep their
// relative order inside each group.
//
// Complexity: O(n) time, O(n) extra space.
func GroupByColor(pts []ColoredPoint) []Group {
	var groups []Group
	at := make(map[string]int)
	for i, p := range pts {
		g, ok := at[p.Color]
		if !ok {
			g = len(groups)
			at[p.Color] = g
			groups = append(groups, Group{Color: p.Color})
		}
		groups[g].Points = append(groups[g].Points, p)
		groups[g].Index = append(groups[g].Index, i)
	}

	return groups
}

// Colors returns the labels of groups in order.
func Colors(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Color
	}

	return out
}
