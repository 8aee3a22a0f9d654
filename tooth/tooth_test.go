package tooth

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/involute"
	"github.com/soypat/involute/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func radii(p involute.Profile) (min, max float64) {
	min, max = math.Inf(1), 0
	for _, v := range p {
		r := r2.Norm(v)
		min = math.Min(min, r)
		max = math.Max(max, r)
	}
	return min, max
}

func TestGenerate(t *testing.T) {
	for _, tc := range []struct {
		z        int
		alpha, m float64
		step     float64
		mode     involute.FilletMode
		tip      curve.TipStyle
	}{
		{20, 20, 2, 0.1, involute.FilletTrochoid, curve.TipArc},
		{20, 20, 2, 0.1, involute.FilletTrochoid, curve.TipChord},
		{50, 20, 2, 0.1, involute.FilletArc, curve.TipArc},
		{50, 20, 2, 0.1, involute.FilletArc, curve.TipChord},
		// teeth overlap at the base circle but flanks start on the root circle.
		{106, 20, 2, 0.1, involute.FilletArc, curve.TipArc},
		{120, 20, 2, 0.1, involute.FilletArc, curve.TipArc},
		{200, 20, 2, 0.1, involute.FilletArc, curve.TipChord},
		{40, 30, 1, 0.1, involute.FilletArc, curve.TipArc},
		// root gap narrower than step leaves no root arc points.
		{40, 30, 1, 0.5, involute.FilletArc, curve.TipArc},
	} {
		d, p, err := Generate(involute.StandardParams(tc.z, tc.alpha, tc.m), tc.step, WithTip(tc.tip))
		require.NoError(t, err, "z=%d alpha=%g m=%g", tc.z, tc.alpha, tc.m)
		assert.Equal(t, tc.mode, d.FilletMode())
		assert.True(t, p.Closed(), "z=%d", tc.z)
		assert.Greater(t, len(p), tc.z)
		min, max := radii(p)
		assert.InDelta(t, d.Rf, min, 1e-9, "z=%d %s", tc.z, tc.tip)
		assert.LessOrEqual(t, max, d.Ra+1e-9)
		assert.InDelta(t, d.Ra, max, 1e-9, "flank ends lie on the addendum circle")
	}
}

func TestGenerateBacklash(t *testing.T) {
	params := involute.StandardParams(20, 20, 2)
	_, tight, err := Generate(params, 0.1)
	require.NoError(t, err)
	params.Backlash = 0.04
	d, loose, err := Generate(params, 0.1)
	require.NoError(t, err)
	// a thinner tooth leaves the pitch circle at a smaller polar angle.
	pitchCrossing := func(p involute.Profile) float64 {
		for _, v := range p {
			if r2.Norm(v) >= d.R {
				return math.Atan2(v.Y, v.X)
			}
		}
		t.Fatal("profile never reaches the pitch circle")
		return 0
	}
	assert.Greater(t, pitchCrossing(loose), pitchCrossing(tight))
}

func TestAssembleErrors(t *testing.T) {
	d, err := involute.Derive(involute.StandardParams(20, 20, 2))
	require.NoError(t, err)

	_, err = Assemble(d, 0)
	var perr *involute.InvalidParameterError
	assert.True(t, errors.As(err, &perr), "zero step")

	var aerr *involute.AssemblyError
	bad := d
	bad.Ra = d.Rb - 1
	_, err = Assemble(bad, 0.1)
	assert.True(t, errors.As(err, &aerr), "tip inside base circle")

	bad = d
	bad.Ra = 2 * d.R
	_, err = Assemble(bad, 0.1)
	assert.True(t, errors.As(err, &aerr), "pointed teeth")

	bad = d
	bad.S = d.P
	_, err = Assemble(bad, 0.1)
	require.True(t, errors.As(err, &aerr), "teeth thicker than the pitch")
	assert.Contains(t, aerr.Reason, "flank start")

	_, _, err = Generate(involute.StandardParams(3, 20, 2), 0.1)
	assert.True(t, errors.As(err, &perr), "too few teeth")
}

func TestRecovered(t *testing.T) {
	want := &involute.AssemblyError{Reason: "x"}
	assert.Same(t, want, recovered(want))

	err := recovered("boom")
	var serr *shapeErr
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "boom", err.Error())
	assert.NotEmpty(t, serr.stack)
}

func TestOutline(t *testing.T) {
	d, p, err := Generate(involute.StandardParams(20, 20, 2), 0.1)
	require.NoError(t, err)
	o, err := NewOutline(p)
	require.NoError(t, err)

	assert.True(t, o.Contains(r2.Vec{}))
	assert.InDelta(t, -d.Rf, o.Evaluate(r2.Vec{}), 0.01)
	assert.False(t, o.Contains(r2.Vec{X: d.Ra + 1}))
	assert.Greater(t, o.Evaluate(r2.Vec{X: d.Ra + 1}), 1.0)

	// first tooth is centred on half an angular pitch, first gap on one pitch.
	toothMid := r2.Scale(d.R, r2.Vec{X: math.Cos(d.Angle / 2), Y: math.Sin(d.Angle / 2)})
	gapMid := r2.Scale(d.R, r2.Vec{X: math.Cos(d.Angle), Y: math.Sin(d.Angle)})
	assert.True(t, o.Contains(toothMid))
	assert.False(t, o.Contains(gapMid))

	b := o.Bounds()
	assert.LessOrEqual(t, b.Max.X, d.Ra+1e-9)
	assert.Greater(t, b.Max.X, d.R)
	assert.GreaterOrEqual(t, b.Min.Y, -d.Ra-1e-9)

	_, err = NewOutline(p[:3])
	assert.Error(t, err)
	_, err = NewOutline(p[:len(p)-1])
	assert.Error(t, err)
}

func TestOutlineWinding(t *testing.T) {
	// counter-clockwise square with a repeated corner.
	square := involute.Profile{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	o, err := NewOutline(square)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		p    r2.Vec
		want float64
	}{
		{r2.Vec{X: 1, Y: 1}, -1},
		{r2.Vec{X: 1, Y: 0.5}, -0.5},
		{r2.Vec{X: 3, Y: 1}, 1},
		// horizontal ray through the corners at y=2.
		{r2.Vec{X: -1, Y: 2}, 1},
		{r2.Vec{X: 3, Y: 3}, math.Sqrt2},
	} {
		if got := o.Evaluate(tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Evaluate(%v) = %g, want %g", tc.p, got, tc.want)
		}
	}
	if !o.Contains(r2.Vec{X: 0.1, Y: 1.9}) {
		t.Error("point near corner should be inside")
	}
}
