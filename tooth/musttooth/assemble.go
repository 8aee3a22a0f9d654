// Package musttooth assembles gear outlines and panics on invalid input.
// Use package tooth for the error returning versions.
package musttooth

import (
	"github.com/soypat/involute"
	"github.com/soypat/involute/curve"
	"gonum.org/v1/gonum/spatial/r2"
)

// Assemble returns the closed outline of the gear described by d. Points are
// spaced roughly step apart along the flanks and circles. For every tooth it
// emits the leading flank, the tip land, the trailing flank and the
// following tooth gap, then repeats the first point to close the loop.
func Assemble(d involute.Derived, step float64, tip curve.TipStyle) involute.Profile {
	if !(step > 0) {
		panic(&involute.InvalidParameterError{Param: "step", Value: step, Reason: "must be positive"})
	}
	if d.Ra < d.Rb {
		panic(&involute.AssemblyError{Reason: "addendum circle inside base circle"})
	}
	gap := d.Gap()
	R := d.FlankStart()
	// flanks begin at R, the gap may close below it.
	if !(gap+2*involute.Involute(must(involute.PressureAngleAt(d.Rb, R))) > 0) {
		panic(&involute.AssemblyError{Reason: "teeth thicker than the angular pitch at the flank start"})
	}
	alphaTip := must(involute.PressureAngleAt(d.Rb, d.Ra))
	invTip := involute.Involute(alphaTip)
	if d.Angle-gap-2*invTip < -involute.Tolerance {
		panic(&involute.AssemblyError{Reason: "pointed teeth, flanks cross below the addendum circle"})
	}

	gapSegment := mustPath(curve.GapSegment(d, step))
	profile := make(involute.Profile, 0, d.Teeth*(4*int((d.Ra-R)/step)+len(gapSegment)+8)+1)
	for i := 0; i < d.Teeth; i++ {
		lead := d.Angle*float64(i) + gap/2
		trail := d.Angle*float64(i+1) - gap/2
		profile = append(profile, mustPath(curve.Flank(d.Rb, R, d.Ra, step, curve.Leading, lead))...)
		profile = append(profile, mustPath(curve.TipLand(d.Ra, lead+invTip, trail-invTip, step, tip))...)
		profile = append(profile, mustPath(curve.Flank(d.Rb, d.Ra, R, step, curve.Trailing, trail))...)
		profile = append(profile, gapSegment.Rotate(d.Angle*float64(i+1), r2.Vec{})...)
	}
	if len(profile) == 0 {
		panic(&involute.AssemblyError{Reason: "no outline points generated"})
	}
	return append(profile, profile[0])
}

func must(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}

func mustPath(p involute.Path, err error) involute.Path {
	if err != nil {
		panic(err)
	}
	return p
}
