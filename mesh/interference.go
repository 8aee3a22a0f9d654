package mesh

import (
	"github.com/soypat/involute"
	"github.com/soypat/involute/tooth"
	"gonum.org/v1/gonum/spatial/r2"
)

// Interference poses the gears as MeasureContactRatio does, turns gear A by
// -angle degrees and gear B accordingly, and returns how many outline points
// of B lie inside or on the outline of A. Meshing gears with backlash
// return zero.
func Interference(a, b Gear, angle float64) (int, error) {
	if err := CheckCompatible(a.Params, b.Params); err != nil {
		return 0, err
	}
	if err := checkGear("gear A", a); err != nil {
		return 0, err
	}
	if err := checkGear("gear B", b); err != nil {
		return 0, err
	}
	pa, pb, ca, cb := Pose(a, b)
	theta := involute.DtoR(angle)
	ratio := float64(a.Params.Teeth) / float64(b.Params.Teeth)
	pa = pa.Rotate(-theta, ca)
	pb = pb.Rotate(theta*ratio, cb)

	outline, err := tooth.NewOutline(pa)
	if err != nil {
		return 0, err
	}
	ra2 := a.Params.Ra * a.Params.Ra
	rf2 := a.Params.Rf * a.Params.Rf
	n := 0
	for _, q := range pb[:len(pb)-1] {
		dist2 := r2.Norm2(r2.Sub(q, ca))
		switch {
		case dist2 > ra2:
			// beyond the tips of A.
		case dist2 < rf2:
			n++
		case outline.Contains(q):
			n++
		}
	}
	return n, nil
}
