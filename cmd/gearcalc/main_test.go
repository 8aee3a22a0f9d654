package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/involute/curve"
	"github.com/soypat/involute/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
	"gonum.org/v1/plot/cmpimg"
)

const pairYAML = `
step: 0.2
tip: chord
samples: 12
speed: 5
power: 1500
gears:
  - {teeth: 20, pressure_angle: 20, module: 2, backlash: 0.04}
  - {teeth: 32, pressure_angle: 20, module: 2, backlash: 0.04}
`

func TestLoadJob(t *testing.T) {
	job, err := LoadJob(strings.NewReader(pairYAML))
	require.NoError(t, err)
	assert.Equal(t, 0.2, job.Step)
	assert.Equal(t, DefaultThreshold, job.Threshold)
	assert.Equal(t, 12, job.Samples)
	assert.Equal(t, 5.0, job.Speed)
	assert.Equal(t, 1500.0, job.Power)
	require.Len(t, job.Gears, 2)
	assert.Equal(t, 32, job.Gears[1].Teeth)
	p := job.Gears[0].Params()
	assert.Equal(t, 1.0, p.Addendum)
	assert.Equal(t, 1.25, p.Dedendum)
	assert.Equal(t, 0.04, p.Backlash)
	style, err := job.TipStyle()
	require.NoError(t, err)
	assert.Equal(t, curve.TipChord, style)
	assert.NoError(t, job.Validate())

	_, err = LoadJob(strings.NewReader("stepp: 1\n"))
	assert.Error(t, err, "unknown field")
	_, err = LoadJob(strings.NewReader(""))
	assert.Error(t, err, "empty file")
}

func TestJobValidate(t *testing.T) {
	ok := DefaultJob()
	ok.Gears = []GearSpec{{Teeth: 20, PressureAngle: 20, Module: 2}}
	require.NoError(t, ok.Validate())

	for name, mod := range map[string]func(*Job){
		"no gears":    func(j *Job) { j.Gears = nil },
		"three gears": func(j *Job) { j.Gears = append(j.Gears, j.Gears[0], j.Gears[0]) },
		"step":        func(j *Job) { j.Step = 0 },
		"threshold":   func(j *Job) { j.Threshold = 2 },
		"samples":     func(j *Job) { j.Samples = 0 },
		"speed":       func(j *Job) { j.Speed = -1 },
		"power":       func(j *Job) { j.Power = -1 },
		"tip":         func(j *Job) { j.Tip = "round" },
	} {
		j := ok
		j.Gears = append([]GearSpec(nil), ok.Gears...)
		mod(&j)
		assert.Error(t, j.Validate(), name)
	}
}

func TestParseFlags(t *testing.T) {
	job, files, err := parseFlags([]string{"-z", "18", "-z2", "30", "-tip", "chord", "-plot", "c.png", "-speed", "2.5"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, job.Speed)
	assert.Zero(t, job.Power)
	require.Len(t, job.Gears, 2)
	assert.Equal(t, 18, job.Gears[0].Teeth)
	assert.Equal(t, 30, job.Gears[1].Teeth)
	assert.Equal(t, "chord", job.Tip)
	assert.Equal(t, "c.png", files.plot)
	assert.Empty(t, files.dxf)

	cfg := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(pairYAML), 0o644))
	job, _, err = parseFlags([]string{"-config", cfg, "-threshold", "0.05"})
	require.NoError(t, err)
	require.Len(t, job.Gears, 2, "gears come from the job file")
	assert.Equal(t, 0.05, job.Threshold)
	assert.Equal(t, 0.2, job.Step)
	assert.Equal(t, 1500.0, job.Power, "power comes from the job file")

	_, _, err = parseFlags([]string{"-tip", "round"})
	assert.Error(t, err)
	_, _, err = parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func runPair(t *testing.T) (Job, Output) {
	t.Helper()
	job, err := LoadJob(strings.NewReader(pairYAML))
	require.NoError(t, err)
	out, err := run(context.Background(), job)
	require.NoError(t, err)
	return job, out
}

func TestRunReport(t *testing.T) {
	job, out := runPair(t)
	require.Len(t, out.Gears, 2)
	require.NotNil(t, out.Contact)
	assert.Len(t, out.Contact.Samples, 12)

	var buf bytes.Buffer
	require.NoError(t, report(&buf, job, out))
	s := buf.String()
	assert.Contains(t, s, "gear A")
	assert.Contains(t, s, "gear B")
	assert.Contains(t, s, "fillet=trochoid")
	assert.Contains(t, s, "r_a")
	assert.Contains(t, s, "contact ratio")

	require.NotNil(t, out.Noise)
	want, err := mesh.NoiseLevel(mesh.NoiseParams{Ratio: 32.0 / 20, ContactRatio: out.Contact.Mean, Speed: 5, Power: 1500})
	require.NoError(t, err)
	assert.InDelta(t, want, *out.Noise, 1e-12)
	assert.Contains(t, s, "noise level")

	single := job
	single.Gears = single.Gears[:1]
	out, err = run(context.Background(), single)
	require.NoError(t, err)
	assert.Nil(t, out.Contact)
	assert.Nil(t, out.Noise)

	bad := job
	bad.Gears = []GearSpec{{Teeth: 2, PressureAngle: 20, Module: 2}}
	_, err = run(context.Background(), bad)
	assert.Error(t, err)
}

func TestRenderContact(t *testing.T) {
	_, out := runPair(t)
	b1, err := renderContact(out, "png")
	require.NoError(t, err)
	b2, err := renderContact(out, "png")
	require.NoError(t, err)
	equal, err := cmpimg.EqualApprox("png", b1, b2, 0)
	require.NoError(t, err)
	assert.True(t, equal, "chart rendering is deterministic")

	out.Contact = nil
	_, err = renderContact(out, "png")
	assert.Error(t, err)
}

func TestWriteDXF(t *testing.T) {
	_, out := runPair(t)
	name := filepath.Join(t.TempDir(), "pair.dxf")
	require.NoError(t, writeDXF(name, out))

	drawing, err := dxf.Open(name)
	require.NoError(t, err)
	var polylines []*entity.LwPolyline
	for _, e := range drawing.Entities() {
		if lw, ok := e.(*entity.LwPolyline); ok {
			polylines = append(polylines, lw)
		}
	}
	require.Len(t, polylines, 2)
	assert.Len(t, polylines[0].Vertices, len(out.Gears[0].Profile))
	assert.Len(t, polylines[1].Vertices, len(out.Gears[1].Profile))
	// gear B sits right of the pitch point.
	assert.Greater(t, polylines[1].Vertices[0][0], 0.0)
	assert.Less(t, polylines[0].Vertices[0][0], 0.0)
}
