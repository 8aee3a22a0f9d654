package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is an ordered collection of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Pol is a polar coordinate. Theta is in radians.
type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// CartesianToPolar converts a cartesian to a polar coordinate.
// The origin maps to {0, 0}, atan2 takes care of points on the y axis.
func CartesianToPolar(a r2.Vec) Pol {
	return Pol{R: r2.Norm(a), Theta: math.Atan2(a.Y, a.X)}
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	return Pol{r, theta}.PolarToCartesian()
}

// Side returns the signed offset of p from the line through the origin
// with gradient tan(angle). It is p.Y - p.X*tan(angle), the sign tells on
// which side of the line p lies.
func Side(p r2.Vec, angle float64) float64 {
	return p.Y - p.X*math.Tan(angle)
}
