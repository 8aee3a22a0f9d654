package involute

import (
	"github.com/soypat/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Path is an ordered sequence of points. Order matters: a Path describes a
// polyline, not a point cloud.
type Path []r2.Vec

// Profile is a closed Path tracing one full gear periphery. Its first
// point equals its last.
type Profile Path

// Bounds returns the bounding box of the path.
func (p Path) Bounds() r2.Box {
	return r2.Box(d2.BoxOf(d2.Set(p)))
}

// Rotate returns a copy of p rotated by theta radians about centre.
func (p Path) Rotate(theta float64, centre r2.Vec) Path {
	return p.transform(d2.RotateAbout(theta, centre))
}

// Translate returns a copy of p displaced by v.
func (p Path) Translate(v r2.Vec) Path {
	return p.transform(d2.Translate(v))
}

func (p Path) transform(t d2.Transform) Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = t.ApplyPos(p[i])
	}
	return out
}

// Closed reports whether the first and last points of the profile coincide.
func (p Profile) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Bounds returns the bounding box of the profile.
func (p Profile) Bounds() r2.Box { return Path(p).Bounds() }

// Rotate returns a copy of p rotated by theta radians about centre.
func (p Profile) Rotate(theta float64, centre r2.Vec) Profile {
	return Profile(Path(p).Rotate(theta, centre))
}

// Translate returns a copy of p displaced by v.
func (p Profile) Translate(v r2.Vec) Profile {
	return Profile(Path(p).Translate(v))
}
