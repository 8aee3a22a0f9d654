package tooth

import (
	"math"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Outline is the signed distance field of a closed gear profile. Distances
// are negative inside the gear.
type Outline struct {
	vertex []r2.Vec  // vertices, first equals last
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// NewOutline precomputes the segments of a closed profile.
func NewOutline(p involute.Profile) (*Outline, error) {
	if len(p) < 4 {
		return nil, &involute.InvalidParameterError{Param: "profile length", Value: float64(len(p)), Reason: "need at least 3 distinct vertices"}
	}
	if !p.Closed() {
		return nil, &involute.InvalidParameterError{Param: "profile", Value: float64(len(p)), Reason: "first and last point differ"}
	}
	s := Outline{vertex: p}
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] > 0 {
			s.vector[i] = r2.Unit(l)
		}
	}
	s.bb = r2.Box(d2.BoxOf(d2.Set(p)))
	return &s, nil
}

// Evaluate returns the signed distance from p to the outline. The sign comes
// from Sunday's winding number test: segments crossing the horizontal ray
// right of p add +1 going up and -1 going down, and a non-zero sum is inside.
// The magnitude is the distance to the nearest segment. Zero-length segments
// left by repeated profile points take part in neither.
func (s *Outline) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64
	wn := 0
	for i, length := range s.length {
		if length == 0 {
			continue
		}
		a, b := s.vertex[i], s.vertex[i+1]
		pa := r2.Sub(p, a)
		u := s.vector[i]
		// side > 0 when p lies right of a->b.
		side := pa.X*u.Y - pa.Y*u.X
		dd = math.Min(dd, segmentDist2(pa, r2.Sub(p, b), r2.Dot(pa, u), side, length))
		wn += crossing(a.Y, b.Y, p.Y, side)
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// segmentDist2 is the squared distance from p to segment a->b given p-a, p-b,
// the projection of p-a onto the segment and the normal offset side.
func segmentDist2(pa, pb r2.Vec, along, side, length float64) float64 {
	switch {
	case along < 0:
		return r2.Norm2(pa)
	case along > length:
		return r2.Norm2(pb)
	}
	return side * side
}

// crossing is the winding contribution of segment a->b to the ray from p.
// Upward segments include their start and exclude their end, downward ones
// the opposite, so a ray through a vertex is counted once.
func crossing(ay, by, py, side float64) int {
	switch {
	case ay <= py && by > py && side < 0:
		return 1
	case ay > py && by <= py && side > 0:
		return -1
	}
	return 0
}

// Contains reports whether p lies inside or on the outline.
func (s *Outline) Contains(p r2.Vec) bool {
	if !d2.Box(s.bb).Contains(p) {
		return false
	}
	return s.Evaluate(p) <= 0
}

// Bounds returns the bounding box of the outline.
func (s *Outline) Bounds() r2.Box {
	return s.bb
}
