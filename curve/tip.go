package curve

import (
	"math"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// TipStyle selects how the tip land between two flank ends is drawn.
type TipStyle int

const (
	// TipArc follows the addendum circle.
	TipArc TipStyle = iota
	// TipChord draws the straight chord between the two flank ends.
	TipChord
)

func (s TipStyle) String() string {
	switch s {
	case TipArc:
		return "arc"
	case TipChord:
		return "chord"
	}
	return "TipStyle(?)"
}

// denominators smaller than this are treated as parallel lines.
const parallelEps = 1e-9

// TipLand samples the tip of a tooth on the addendum radius ra between the
// polar angles of the leading (from) and trailing (to) flank ends. Only
// interior points are returned, the flank ends are part of the flanks.
func TipLand(ra, from, to, step float64, style TipStyle) (involute.Path, error) {
	dtheta, err := involute.ChordAngle(ra, step)
	if err != nil {
		return nil, err
	}
	if to <= from || dtheta == 0 {
		return nil, nil
	}
	thetas := Range(from, to, dtheta)
	if len(thetas) <= 2 {
		return nil, nil
	}
	thetas = thetas[1 : len(thetas)-1]
	path := make(involute.Path, 0, len(thetas))
	switch style {
	case TipArc:
		for _, theta := range thetas {
			path = append(path, d2.PolarToXY(ra, theta))
		}
	case TipChord:
		p1 := d2.PolarToXY(ra, from)
		p2 := d2.PolarToXY(ra, to)
		for _, theta := range thetas {
			path = append(path, rayChord(theta, p1, p2))
		}
	default:
		return nil, &involute.InvalidParameterError{Param: "tip style", Value: float64(style), Reason: "unknown"}
	}
	return path, nil
}

// rayChord intersects the ray from the origin at polar angle theta with the
// line through p1 and p2. A ray parallel to the line gets a substituted
// denominator of the same sign instead of a division by zero.
func rayChord(theta float64, p1, p2 r2.Vec) r2.Vec {
	u := d2.PolarToXY(1, theta)
	e := r2.Sub(p2, p1)
	den := r2.Cross(u, e)
	if math.Abs(den) < parallelEps {
		den = math.Copysign(parallelEps, den)
	}
	s := r2.Cross(p1, e) / den
	return r2.Scale(s, u)
}
