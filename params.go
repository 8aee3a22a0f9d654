// Package involute derives the geometry of involute spur gears from their
// macro parameters. Subpackages generate tooth curves (curve), assemble full
// gear outlines (tooth) and measure the contact ratio of a meshing pair (mesh).
//
// Lengths are in millimetres and angles in radians unless a field says otherwise.
package involute

import (
	"math"
)

// MinTeeth is the smallest tooth count accepted by Derive.
const MinTeeth = 4

// Params are the macro parameters that define a gear.
type Params struct {
	Teeth         int     // tooth count z
	PressureAngle float64 // pressure angle alpha [degrees]
	Module        float64 // module m [mm]
	Backlash      float64 // tooth thinning as a fraction of the nominal thickness
	Addendum      float64 // addendum coefficient, tooth height above pitch circle per module
	Dedendum      float64 // dedendum coefficient, tooth depth below pitch circle per module
}

// StandardParams returns parameters with the standard 1.0/1.25
// addendum/dedendum coefficients and no backlash.
func StandardParams(z int, alpha, m float64) Params {
	return Params{
		Teeth:         z,
		PressureAngle: alpha,
		Module:        m,
		Addendum:      1.0,
		Dedendum:      1.25,
	}
}

// Alpha returns the pressure angle in radians.
func (p Params) Alpha() float64 { return DtoR(p.PressureAngle) }

// Validate checks p for values Derive rejects.
func (p Params) Validate() error {
	switch {
	case p.Teeth < MinTeeth:
		return &InvalidParameterError{Param: "teeth", Value: float64(p.Teeth), Reason: "need at least 4 teeth"}
	case !(p.Module > 0) || math.IsInf(p.Module, 0):
		return &InvalidParameterError{Param: "module", Value: p.Module, Reason: "must be positive and finite"}
	case !(p.PressureAngle > 0 && p.PressureAngle < 90):
		return &InvalidParameterError{Param: "pressure angle", Value: p.PressureAngle, Reason: "must be in (0,90) degrees"}
	case !(p.Backlash >= 0 && p.Backlash < 1):
		return &InvalidParameterError{Param: "backlash", Value: p.Backlash, Reason: "must be in [0,1)"}
	case !(p.Addendum > 0):
		return &InvalidParameterError{Param: "addendum", Value: p.Addendum, Reason: "coefficient must be positive"}
	case !(p.Dedendum > 0):
		return &InvalidParameterError{Param: "dedendum", Value: p.Dedendum, Reason: "coefficient must be positive"}
	}
	return nil
}

// Derived holds every radius and angle needed to draw a gear.
// It is computed once by Derive and treated as read-only.
type Derived struct {
	Params
	D     float64 // pitch diameter [mm]
	R     float64 // pitch radius [mm]
	Db    float64 // base diameter [mm]
	Rb    float64 // base radius [mm]
	Ha    float64 // addendum [mm]
	Hf    float64 // dedendum [mm]
	H     float64 // whole depth [mm]
	C     float64 // bottom clearance [mm]
	Hw    float64 // working depth [mm]
	Ra    float64 // addendum (tip) radius [mm]
	Da    float64 // addendum diameter [mm]
	Rf    float64 // root radius [mm]
	Df    float64 // root diameter [mm]
	P     float64 // circular pitch [mm]
	S     float64 // tooth thickness on the pitch circle after backlash [mm]
	Angle float64 // angular pitch 2π/z [rad]
	Jt    float64 // backlash thinning arc length [mm]
}

// Derive computes the derived gear geometry from macro parameters.
func Derive(p Params) (Derived, error) {
	if err := p.Validate(); err != nil {
		return Derived{}, err
	}
	z := float64(p.Teeth)
	m := p.Module
	d := Derived{Params: p}
	d.D = m * z
	d.R = d.D / 2
	d.Db = d.D * math.Cos(p.Alpha())
	d.Rb = d.Db / 2
	d.Ha = p.Addendum * m
	d.Hf = p.Dedendum * m
	d.H = d.Ha + d.Hf
	d.C = d.Hf - d.Ha
	d.Hw = 2 * d.Ha
	d.Ra = d.R + d.Ha
	d.Da = 2 * d.Ra
	d.Rf = d.R - d.Hf
	d.Df = 2 * d.Rf
	d.P = pi * m
	d.S = d.P / 2 * (1 - p.Backlash)
	d.Angle = tau / z
	d.Jt = p.Backlash * d.S
	return d, nil
}

// FilletMode selects how the gap between two teeth is closed near the root.
type FilletMode int

const (
	// FilletArc joins the flanks with an arc on the root circle. Used when the
	// root circle lies outside the base circle so flanks start at the root.
	FilletArc FilletMode = iota
	// FilletTrochoid joins the flanks with the trochoid cut by the rack tip.
	// Used when the root circle lies on or inside the base circle.
	FilletTrochoid
)

func (f FilletMode) String() string {
	switch f {
	case FilletArc:
		return "arc"
	case FilletTrochoid:
		return "trochoid"
	}
	return "FilletMode(?)"
}

// FilletMode returns the root fillet generator these parameters need.
func (d Derived) FilletMode() FilletMode {
	if d.Rf > d.Rb {
		return FilletArc
	}
	return FilletTrochoid
}

// FlankStart returns the radius at which the involute flanks begin,
// the larger of the root and base radius.
func (d Derived) FlankStart() float64 {
	return math.Max(d.Rf, d.Rb)
}

// Gap returns the angular width between the base points of two adjacent
// teeth flanks, angle - (s/r + 2*(inv(acos(rb/r)) - inv(acos(rb/rb)))).
func (d Derived) Gap() float64 {
	alphaR := math.Acos(Clamp(d.Rb/d.R, -1, 1))
	return d.Angle - (d.S/d.R + 2*(Involute(alphaR)-Involute(0)))
}

// Named returns the derived parameters as a name to value mapping, the form
// tabular persistence layers consume.
func (d Derived) Named() map[string]float64 {
	return map[string]float64{
		"z":        float64(d.Teeth),
		"alpha":    d.PressureAngle,
		"m":        d.Module,
		"backlash": d.Backlash,
		"d":        d.D,
		"r":        d.R,
		"d_b":      d.Db,
		"r_b":      d.Rb,
		"h_a":      d.Ha,
		"h_f":      d.Hf,
		"h":        d.H,
		"c":        d.C,
		"h_w":      d.Hw,
		"r_a":      d.Ra,
		"d_a":      d.Da,
		"r_f":      d.Rf,
		"d_f":      d.Df,
		"p":        d.P,
		"s":        d.S,
		"angle":    d.Angle,
		"j_t":      d.Jt,
	}
}
