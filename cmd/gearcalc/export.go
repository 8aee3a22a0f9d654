package main

import (
	"fmt"

	"github.com/soypat/involute"
	"github.com/soypat/involute/mesh"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// writeDXF saves the gear outlines as LWPOLYLINEs, one layer per gear.
// A pair is written in its meshing pose.
func writeDXF(filename string, out Output) error {
	profiles := make([]involute.Profile, len(out.Gears))
	for i, g := range out.Gears {
		profiles[i] = g.Profile
	}
	if len(out.Gears) == 2 {
		profiles[0], profiles[1], _, _ = mesh.Pose(out.Gears[0], out.Gears[1])
	}
	colors := []color.ColorNumber{color.Red, color.Blue}

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	for i, p := range profiles {
		layer := fmt.Sprintf("gear%c", 'A'+rune(i))
		if _, err := d.AddLayer(layer, colors[i%len(colors)], dxf.DefaultLineType, true); err != nil {
			return err
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		lwp := entity.NewLwPolyline(len(p))
		for j, v := range p {
			lwp.Vertices[j] = []float64{v.X, v.Y}
		}
		d.AddEntity(lwp)
	}
	return d.SaveAs(filename)
}
