package involute

import (
	"math"
)

const (
	pi  = math.Pi
	tau = 2 * pi
)

// Tolerance is the absolute slack used when comparing lengths and angles
// that should agree up to roundoff.
const Tolerance = 1e-9

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Involute returns the involute function inv(alpha) = tan(alpha) - alpha,
// the polar angle of an involute point with pressure angle alpha.
func Involute(alpha float64) float64 {
	return math.Tan(alpha) - alpha
}

// PressureAngleAt returns the pressure angle acos(rb/r) of an involute
// generated from base radius rb at radius r.
func PressureAngleAt(rb, r float64) (float64, error) {
	arg := rb / r
	if r <= 0 || arg > 1+Tolerance || arg < -1 || math.IsNaN(arg) {
		return 0, &DomainError{Op: "acos", Arg: arg}
	}
	return math.Acos(Clamp(arg, -1, 1)), nil
}

// ChordAngle returns the angle subtended by a chord of length s on a
// circle of radius r. It is used wherever a circle is sampled with uniform
// point spacing.
func ChordAngle(r, s float64) (float64, error) {
	if r <= 0 {
		return 0, &InvalidParameterError{Param: "radius", Value: r, Reason: "must be positive"}
	}
	arg := (2*r*r - s*s) / (2 * r * r)
	if arg < -1 || arg > 1 {
		return 0, &DomainError{Op: "acos", Arg: arg}
	}
	return math.Acos(arg), nil
}
