package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/soypat/involute"
	"github.com/soypat/involute/curve"
	"github.com/soypat/involute/mesh"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStep      = 0.1
	DefaultThreshold = 0.02
)

// GearSpec is the YAML form of involute.Params.
type GearSpec struct {
	Teeth         int     `yaml:"teeth"`
	PressureAngle float64 `yaml:"pressure_angle"`
	Module        float64 `yaml:"module"`
	Backlash      float64 `yaml:"backlash"`
	Addendum      float64 `yaml:"addendum"`
	Dedendum      float64 `yaml:"dedendum"`
}

// Params converts s, filling zero coefficients with the standard values.
func (s GearSpec) Params() involute.Params {
	p := involute.StandardParams(s.Teeth, s.PressureAngle, s.Module)
	p.Backlash = s.Backlash
	if s.Addendum != 0 {
		p.Addendum = s.Addendum
	}
	if s.Dedendum != 0 {
		p.Dedendum = s.Dedendum
	}
	return p
}

// Job describes one gearcalc run. With two gears the contact ratio of the
// pair is measured as well.
//
//	step: 0.1
//	tip: chord
//	threshold: 0.02
//	speed: 5
//	power: 1500
//	gears:
//	  - {teeth: 20, pressure_angle: 20, module: 2}
//	  - {teeth: 32, pressure_angle: 20, module: 2}
type Job struct {
	Step      float64 `yaml:"step"`
	Tip       string  `yaml:"tip"`
	Threshold float64 `yaml:"threshold"`
	Samples   int     `yaml:"samples"`

	// Speed is the pitch line velocity [m/s] and Power the transmitted
	// power [W] used by the noise estimate. Zero power drops its term.
	Speed float64    `yaml:"speed"`
	Power float64    `yaml:"power"`
	Gears []GearSpec `yaml:"gears"`
}

func DefaultJob() Job {
	return Job{
		Step:      DefaultStep,
		Tip:       curve.TipArc.String(),
		Threshold: DefaultThreshold,
		Samples:   mesh.DefaultSamples,
	}
}

// LoadJob decodes a YAML job. Fields left out keep their DefaultJob value.
func LoadJob(r io.Reader) (Job, error) {
	job := DefaultJob()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		if errors.Is(err, io.EOF) {
			return Job{}, errors.New("empty job file")
		}
		return Job{}, err
	}
	return job, nil
}

func (j Job) Validate() error {
	if len(j.Gears) < 1 || len(j.Gears) > 2 {
		return fmt.Errorf("job needs one or two gears, got %d", len(j.Gears))
	}
	if !(j.Step > 0) {
		return &involute.InvalidParameterError{Param: "step", Value: j.Step, Reason: "must be positive"}
	}
	if !(j.Threshold > 0 && j.Threshold <= 1) {
		return &involute.InvalidParameterError{Param: "threshold", Value: j.Threshold, Reason: "must be in (0,1]"}
	}
	if j.Samples < 1 {
		return &involute.InvalidParameterError{Param: "samples", Value: float64(j.Samples), Reason: "need at least one sample"}
	}
	if !(j.Speed >= 0) {
		return &involute.InvalidParameterError{Param: "speed", Value: j.Speed, Reason: "must not be negative"}
	}
	if !(j.Power >= 0) {
		return &involute.InvalidParameterError{Param: "power", Value: j.Power, Reason: "must not be negative"}
	}
	_, err := j.TipStyle()
	return err
}

func (j Job) TipStyle() (curve.TipStyle, error) {
	switch j.Tip {
	case "", curve.TipArc.String():
		return curve.TipArc, nil
	case curve.TipChord.String():
		return curve.TipChord, nil
	}
	return 0, fmt.Errorf("unknown tip style %q", j.Tip)
}
