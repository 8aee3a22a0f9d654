// Package mesh measures how two involute gears mesh. The gears are placed
// with tangent pitch circles at the origin, gear A to the left and gear B to
// the right, and turned through a full revolution of A.
package mesh

import (
	"context"
	"math"
	"runtime"

	"github.com/soypat/involute"
	"github.com/soypat/involute/internal/d2"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// DefaultSamples is the number of rotation samples in a contact sweep.
const DefaultSamples = 180

// Gear is an assembled outline together with the parameters it was built from.
type Gear struct {
	Profile involute.Profile
	Params  involute.Derived
}

// Sample is the number of contacts found at one rotation of gear A.
type Sample struct {
	Angle    float64 // rotation of gear A [degrees], in [0,360)
	Contacts int
}

// Result of a contact sweep.
type Result struct {
	Samples []Sample
	// Mean is the arithmetic mean of the contact counts, the contact ratio estimate.
	Mean float64
	// LineOfAction holds the two points bounding the path of contact.
	LineOfAction [2]r2.Vec
}

type config struct {
	samples int
	workers int
}

// Option configures MeasureContactRatio.
type Option func(*config)

// WithSamples sets the number of evenly spaced rotation samples. Default is DefaultSamples.
func WithSamples(n int) Option {
	return func(c *config) { c.samples = n }
}

// WithWorkers limits the number of samples evaluated concurrently.
// Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// CheckCompatible returns an IncompatibleGearsError if a and b do not share
// module and pressure angle.
func CheckCompatible(a, b involute.Derived) error {
	if math.Abs(a.Module-b.Module) > involute.Tolerance {
		return &involute.IncompatibleGearsError{Field: "module", A: a.Module, B: b.Module}
	}
	if math.Abs(a.PressureAngle-b.PressureAngle) > involute.Tolerance {
		return &involute.IncompatibleGearsError{Field: "pressure angle", A: a.PressureAngle, B: b.PressureAngle}
	}
	return nil
}

func checkGear(name string, g Gear) error {
	if !g.Profile.Closed() {
		return &involute.InvalidParameterError{Param: name + " profile", Value: float64(len(g.Profile)), Reason: "profile is not closed"}
	}
	return nil
}

// MeasureContactRatio turns gear A through a full revolution and counts,
// at each rotation sample, the pairs of flank crossings of the line of
// action that lie closer than threshold. The distance d between a pair is
// compared as 2*d/(rA+rB) < threshold.
//
// Samples are evaluated concurrently. If ctx is cancelled the sweep stops
// at the next sample boundary and the context error is returned.
func MeasureContactRatio(ctx context.Context, a, b Gear, threshold float64, opts ...Option) (Result, error) {
	cfg := config{samples: DefaultSamples, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case !(threshold > 0 && threshold <= 1):
		return Result{}, &involute.InvalidParameterError{Param: "threshold", Value: threshold, Reason: "must be in (0,1]"}
	case cfg.samples < 1:
		return Result{}, &involute.InvalidParameterError{Param: "samples", Value: float64(cfg.samples), Reason: "need at least one sample"}
	case cfg.workers < 1:
		return Result{}, &involute.InvalidParameterError{Param: "workers", Value: float64(cfg.workers), Reason: "need at least one worker"}
	}
	if err := CheckCompatible(a.Params, b.Params); err != nil {
		return Result{}, err
	}
	if err := checkGear("gear A", a); err != nil {
		return Result{}, err
	}
	if err := checkGear("gear B", b); err != nil {
		return Result{}, err
	}
	sw, err := newSweep(a, b, threshold)
	if err != nil {
		return Result{}, err
	}

	samples := make([]Sample, cfg.samples)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for k := range samples {
		if gctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			deg := 360 * float64(k) / float64(cfg.samples)
			samples[k] = Sample{Angle: deg, Contacts: sw.contacts(involute.DtoR(deg))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	counts := make([]float64, len(samples))
	for i, s := range samples {
		counts[i] = float64(s.Contacts)
	}
	return Result{
		Samples:      samples,
		Mean:         stat.Mean(counts, nil),
		LineOfAction: sw.loa,
	}, nil
}

// sweep holds the gears in their meshing pose. It is read-only once built
// so samples may be evaluated concurrently.
type sweep struct {
	a, b      Gear
	pa, pb    involute.Profile // posed profiles
	ca, cb    r2.Vec           // gear centres
	ratio     float64          // zA/zB
	box       d2.Box           // region searched for crossings
	lineAngle float64          // direction of the line of action
	threshold float64
	loa       [2]r2.Vec
}

func newSweep(a, b Gear, threshold float64) (*sweep, error) {
	loa, err := LineOfAction(a.Params, b.Params)
	if err != nil {
		return nil, err
	}
	pa, pb, ca, cb := Pose(a, b)
	box := d2.BoxOf(d2.Set(loa[:])).ScaleAboutOrigin(1.25)
	return &sweep{
		a:         a,
		b:         b,
		pa:        pa,
		pb:        pb,
		ca:        ca,
		cb:        cb,
		ratio:     float64(a.Params.Teeth) / float64(b.Params.Teeth),
		box:       box,
		lineAngle: math.Pi/2 + a.Params.Alpha(),
		threshold: threshold,
		loa:       loa,
	}, nil
}

// Pose places gear A with its centre at (-rA,0) and gear B at (rB,0) so their
// pitch circles touch at the origin. B is turned by half an angular pitch,
// less its backlash thinning, so a tooth of A faces a gap of B.
func Pose(a, b Gear) (pa, pb involute.Profile, ca, cb r2.Vec) {
	ca = r2.Vec{X: -a.Params.R}
	cb = r2.Vec{X: b.Params.R}
	pa = a.Profile.Translate(ca)
	pb = b.Profile.Rotate(b.Params.Angle/2-b.Params.Jt/b.Params.R, r2.Vec{}).Translate(cb)
	return pa, pb, ca, cb
}

// contacts counts the contacts with gear A turned by -theta radians.
func (s *sweep) contacts(theta float64) int {
	ta := d2.RotateAbout(-theta, s.ca)
	tb := d2.RotateAbout(theta*s.ratio, s.cb)
	ia := crossings(s.pa, ta, s.box, s.lineAngle)
	ib := crossings(s.pb, tb, s.box, s.lineAngle)
	return countPairs(ia, ib, s.threshold, s.a.Params.R+s.b.Params.R)
}
