package d2

import "gonum.org/v1/gonum/spatial/r2"

// Box is a 2d bounding box.
type Box r2.Box

// BoxOf returns the smallest box containing all points of s.
// An empty set returns an empty box at the origin.
func BoxOf(s Set) Box {
	if len(s) == 0 {
		return Box{}
	}
	return Box{Min: s.Min(), Max: s.Max()}
}

// ScaleAboutOrigin scales both corners by k. The result is re-ordered so
// Min stays below Max for negative k.
func (a Box) ScaleAboutOrigin(k float64) Box {
	p, q := r2.Scale(k, a.Min), r2.Scale(k, a.Max)
	return Box{MinElem(p, q), MaxElem(p, q)}
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}
