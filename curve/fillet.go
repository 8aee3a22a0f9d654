package curve

import (
	"math"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Trochoid returns the point at parameter t of the trochoid traced by the
// tip corner of a generating rack rolling on a pitch circle of radius r.
// (x0, y0) is the corner position relative to the rack tooth centre line,
// x0 radial (negative is towards the gear centre) and y0 tangential.
func Trochoid(t, r, x0, y0 float64) r2.Vec {
	sin, cos := math.Sincos(t)
	return r2.Vec{
		X: (r+x0)*cos + (r*t+y0)*sin,
		Y: -(r+x0)*sin + (r*t+y0)*cos,
	}
}

// FilletPoint applies the root fillet band policy to a trochoid sample p.
// Points at or beyond the base radius rb belong to the flank and are
// discarded (keep is false). Points inside the root radius rf are snapped
// onto the root circle at the same polar angle. Any other point is kept as is.
func FilletPoint(p r2.Vec, rf, rb float64) (q r2.Vec, keep bool) {
	pol := d2.CartesianToPolar(p)
	if pol.R >= rb {
		return p, false
	}
	if pol.R < rf {
		return d2.PolarToXY(rf, pol.Theta), true
	}
	return p, true
}

// rackCorner returns the tip corner of the generating rack that cuts the
// gear described by d, relative to the centre line of the rack tooth.
func rackCorner(d involute.Derived) (x0, y0 float64) {
	x0 = -(d.Ha + d.C)
	y0 = 0.25*math.Pi*d.Module + x0*math.Tan(d.Alpha())
	return x0, y0
}

// Fillet returns the two trochoid root fillets of the tooth gap centred on
// polar angle zero. The first runs from the foot of the trailing flank at
// negative angles down to the root circle, the second from the root circle
// up to the foot of the leading flank at positive angles. Backlash widens
// the gap by rotating each half outwards by Jt/D.
//
// The fillet is sampled five times more densely than step since its
// curvature near the root is much higher than that of the flanks.
func Fillet(d involute.Derived, step float64) (first, second involute.Path, err error) {
	if !(step > 0) {
		return nil, nil, &involute.InvalidParameterError{Param: "step", Value: step, Reason: "must be positive"}
	}
	x0, y0 := rackCorner(d)
	dt, err := involute.ChordAngle(d.R, step/5)
	if err != nil {
		return nil, nil, err
	}
	tRoot := -y0 / d.R
	off := d.Jt / d.D

	for _, t := range Range(math.Pi, tRoot, dt) {
		p := Trochoid(t, d.R, x0, y0)
		p.Y = -p.Y // mirror image of the second half
		if p, keep := filletSample(p, d, -off); keep && math.Atan2(p.Y, p.X) <= 0 {
			first = append(first, p)
		}
	}
	for _, t := range Range(tRoot, math.Pi, dt) {
		p := Trochoid(t, d.R, x0, y0)
		if p, keep := filletSample(p, d, off); keep && math.Atan2(p.Y, p.X) >= 0 {
			second = append(second, p)
		}
	}
	return first, second, nil
}

func filletSample(p r2.Vec, d involute.Derived, rotate float64) (r2.Vec, bool) {
	q, keep := FilletPoint(p, d.Rf, d.Rb)
	if !keep {
		return q, false
	}
	pol := d2.CartesianToPolar(q)
	pol.Theta += rotate
	return pol.PolarToCartesian(), true
}

// GapSegment returns the outline of the tooth gap centred on polar angle
// zero, from the foot of one tooth's trailing flank to the foot of the next
// tooth's leading flank. The flank feet themselves are not included. In
// trochoid mode the straight joins between the flank feet and the fillet
// are sampled so no two consecutive points are more than step apart.
func GapSegment(d involute.Derived, step float64) (involute.Path, error) {
	switch d.FilletMode() {
	case involute.FilletArc:
		R := d.FlankStart()
		alpha, err := involute.PressureAngleAt(d.Rb, R)
		if err != nil {
			return nil, err
		}
		half := d.Gap()/2 + involute.Involute(alpha)
		return RootArc(R, -half, half, step)
	case involute.FilletTrochoid:
		first, second, err := Fillet(d, step)
		if err != nil {
			return nil, err
		}
		_, y0 := rackCorner(d)
		half := y0/d.R + d.Jt/d.D
		root, err := RootArc(d.Rf, -half, half, step)
		if err != nil {
			return nil, err
		}
		core := make(involute.Path, 0, len(first)+len(root)+len(second))
		core = append(core, first...)
		core = append(core, root...)
		core = append(core, second...)
		// flank feet sit on the base circle at ±gap/2.
		lead := d2.PolarToXY(d.Rb, d.Gap()/2)
		trail := r2.Vec{X: lead.X, Y: -lead.Y}
		if len(core) == 0 {
			return bridge(trail, lead, step), nil
		}
		path := bridge(trail, core[0], step)
		path = append(path, core...)
		return append(path, bridge(core[len(core)-1], lead, step)...), nil
	}
	return nil, &involute.AssemblyError{Reason: "unknown fillet mode " + d.FilletMode().String()}
}

// bridge samples the open segment from a to b with points at most step apart.
func bridge(a, b r2.Vec, step float64) involute.Path {
	ab := r2.Sub(b, a)
	n := int(math.Ceil(r2.Norm(ab) / step))
	if n < 2 {
		return nil
	}
	out := make(involute.Path, 0, n-1)
	for k := 1; k < n; k++ {
		out = append(out, r2.Add(a, r2.Scale(float64(k)/float64(n), ab)))
	}
	return out
}
