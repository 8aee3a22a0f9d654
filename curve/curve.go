// Package curve samples the parametric curves that make up a gear tooth:
// involute flanks, the trochoid root fillet, root arcs and the tip land.
//
// Every generator returns a fresh involute.Path and never modifies its inputs.
package curve

import (
	"math"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
)

// Side selects which flank of a tooth an involute belongs to.
type Side int

const (
	// Leading flank, polar angle grows with radius.
	Leading Side = 1
	// Trailing flank, polar angle shrinks with radius.
	Trailing Side = -1
)

// Range returns samples from `from` to `to` spaced by step. The range may
// ascend or descend. Samples are computed as from ± k*step so error does not
// accumulate, and the last sample is always exactly `to`. A non-positive
// step yields only the two end points.
func Range(from, to, step float64) []float64 {
	if from == to {
		return []float64{to}
	}
	if !(step > 0) {
		return []float64{from, to}
	}
	span := math.Abs(to - from)
	sign := 1.0
	if to < from {
		sign = -1
	}
	n := int(math.Floor(span / step))
	out := make([]float64, 0, n+2)
	for k := 0; k <= n; k++ {
		out = append(out, from+sign*float64(k)*step)
	}
	last := out[len(out)-1]
	if math.Abs(last-to) <= involute.Tolerance*math.Max(1, math.Abs(to)) {
		out[len(out)-1] = to
	} else {
		out = append(out, to)
	}
	return out
}

// Flank samples an involute of the base circle rb between radii from and to.
// Each sample r is placed at polar angle side*inv(acos(rb/r)) + phase.
// The first point lies on radius from and the last exactly on radius to.
func Flank(rb, from, to, step float64, side Side, phase float64) (involute.Path, error) {
	switch {
	case !(rb > 0):
		return nil, &involute.InvalidParameterError{Param: "base radius", Value: rb, Reason: "must be positive"}
	case !(step > 0):
		return nil, &involute.InvalidParameterError{Param: "step", Value: step, Reason: "must be positive"}
	case side != Leading && side != Trailing:
		return nil, &involute.InvalidParameterError{Param: "side", Value: float64(side), Reason: "must be +1 or -1"}
	}
	// Catch radii inside the base circle before sampling anything.
	if _, err := involute.PressureAngleAt(rb, math.Min(from, to)); err != nil {
		return nil, err
	}
	radii := Range(from, to, step)
	path := make(involute.Path, 0, len(radii))
	for _, r := range radii {
		alpha, err := involute.PressureAngleAt(rb, r)
		if err != nil {
			return nil, err
		}
		theta := float64(side)*involute.Involute(alpha) + phase
		path = append(path, d2.PolarToXY(r, theta))
	}
	return path, nil
}

// RootArc samples the circle of the given radius between two polar angles
// with points spaced step apart. The end angles are excluded as they belong
// to the neighbouring flank or fillet.
func RootArc(radius, from, to, step float64) (involute.Path, error) {
	dtheta, err := involute.ChordAngle(radius, step)
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
	path := make(involute.Path, 0, len(thetas)-2)
	for _, theta := range thetas[1 : len(thetas)-1] {
		path = append(path, d2.PolarToXY(radius, theta))
	}
	return path, nil
}
