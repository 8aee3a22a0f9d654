// Package tooth builds the closed outline of an involute spur gear.
package tooth

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/involute"
	"github.com/soypat/involute/curve"
	"github.com/soypat/involute/tooth/musttooth"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// recovered converts a recovered panic value back into an error. Error
// values are returned unchanged so callers can match them with errors.As.
func recovered(a interface{}) error {
	if err, ok := a.(error); ok {
		return err
	}
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

type config struct {
	tip curve.TipStyle
}

// Option configures Assemble.
type Option func(*config)

// WithTip selects how the tip land is drawn. The default is curve.TipArc.
func WithTip(style curve.TipStyle) Option {
	return func(c *config) { c.tip = style }
}

// Assemble returns the closed outline of the gear described by d with
// points spaced about step apart. The first point of the result equals
// the last.
func Assemble(d involute.Derived, step float64, opts ...Option) (p involute.Profile, err error) {
	cfg := config{tip: curve.TipArc}
	for _, opt := range opts {
		opt(&cfg)
	}
	defer func() {
		if a := recover(); a != nil {
			p, err = nil, recovered(a)
		}
	}()
	return musttooth.Assemble(d, step, cfg.tip), err
}

// Generate derives parameters from p and assembles the outline in one call.
func Generate(p involute.Params, step float64, opts ...Option) (involute.Derived, involute.Profile, error) {
	d, err := involute.Derive(p)
	if err != nil {
		return involute.Derived{}, nil, err
	}
	profile, err := Assemble(d, step, opts...)
	if err != nil {
		return involute.Derived{}, nil, err
	}
	return d, profile, nil
}
