package mesh

import (
	"math"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

// LineOfAction returns the two points bounding the path of contact on the
// line of action through the pitch point (the origin). The first lies where
// the addendum circle of b crosses the line, the second where the addendum
// circle of a does.
func LineOfAction(a, b involute.Derived) ([2]r2.Vec, error) {
	la, err := approachLength(a)
	if err != nil {
		return [2]r2.Vec{}, err
	}
	lb, err := approachLength(b)
	if err != nil {
		return [2]r2.Vec{}, err
	}
	alpha := a.Alpha()
	return [2]r2.Vec{
		d2.PolarToXY(lb, alpha+math.Pi/2),
		d2.PolarToXY(la, alpha-math.Pi/2),
	}, nil
}

// approachLength solves the triangle formed by the gear centre, the pitch
// point and the point where the addendum circle meets the line of action,
// and returns the distance from the pitch point to the latter.
func approachLength(d involute.Derived) (float64, error) {
	alpha := d.Alpha()
	arg := d.R * math.Sin(alpha+math.Pi/2) / d.Ra
	if !(arg >= -1 && arg <= 1) {
		return 0, &involute.DomainError{Op: "asin", Arg: arg}
	}
	angle := math.Pi/2 - alpha - math.Asin(arg)
	l2 := d.Ra*d.Ra + d.R*d.R - 2*d.Ra*d.R*math.Cos(angle)
	return math.Sqrt(math.Max(l2, 0)), nil
}

// crossings transforms profile p by t and returns the first point of every
// edge that starts inside box and crosses the line through the origin at
// angle lineAngle.
func crossings(p involute.Profile, t d2.Transform, box d2.Box, lineAngle float64) []r2.Vec {
	var out []r2.Vec
	prev := t.ApplyPos(p[0])
	fprev := d2.Side(prev, lineAngle)
	for _, v := range p[1:] {
		cur := t.ApplyPos(v)
		fcur := d2.Side(cur, lineAngle)
		if box.Contains(prev) && (fprev <= 0 && fcur >= 0 || fprev >= 0 && fcur <= 0) {
			out = append(out, prev)
		}
		prev, fprev = cur, fcur
	}
	return out
}

// countPairs counts pairs (p in a, q in b) with 2*|p-q|/(sumR) < threshold.
// Points of b are indexed in a k-d tree and each point of a runs a radius query.
func countPairs(a, b []r2.Vec, threshold, sumR float64) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	radius := threshold * sumR / 2
	pts := make(kdtree.Points, len(b))
	for i, q := range b {
		pts[i] = kdtree.Point{q.X, q.Y}
	}
	tree := kdtree.New(pts, false)
	n := 0
	for _, p := range a {
		keep := kdtree.NewDistKeeper(radius * radius)
		tree.NearestSet(keep, kdtree.Point{p.X, p.Y})
		for _, c := range keep.Heap {
			q, ok := c.Comparable.(kdtree.Point)
			if !ok {
				continue // sentinel holding the query radius
			}
			d := math.Hypot(q[0]-p.X, q[1]-p.Y)
			if 2*d/sumR < threshold {
				n++
			}
		}
	}
	return n
}
