package main

import (
	"bytes"
	"errors"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func plotContact(filename string, out Output) error {
	b, err := renderContact(out, "png")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// renderContact draws the contact count against the rotation of gear A
// with the mean as a horizontal line.
func renderContact(out Output, format string) ([]byte, error) {
	if out.Contact == nil || len(out.Contact.Samples) == 0 {
		return nil, errors.New("no contact samples to plot")
	}
	res := out.Contact
	p := plot.New()
	p.Title.Text = "Contacts along the line of action"
	p.X.Label.Text = "rotation of gear A [deg]"
	p.Y.Label.Text = "contacts"
	p.X.Min, p.X.Max = 0, 360
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(res.Samples))
	for i, s := range res.Samples {
		xys[i].X = s.Angle
		xys[i].Y = float64(s.Contacts)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	mean := plotter.NewFunction(func(float64) float64 { return res.Mean })
	mean.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line, mean)
	p.Legend.Add("contacts", line)
	p.Legend.Add("mean", mean)

	wt, err := p.WriterTo(6*vg.Inch, 3*vg.Inch, format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
