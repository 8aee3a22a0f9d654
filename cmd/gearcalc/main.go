// Command gearcalc derives involute gear geometry and estimates the contact
// ratio of a gear pair.
//
//	gearcalc -z 20 -z2 32 -alpha 20 -m 2 -threshold 0.02
//	gearcalc -config pair.yaml -plot contact.png -dxf pair.dxf
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/soypat/involute/mesh"
	"github.com/soypat/involute/tooth"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gearcalc: ")
	job, files, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := run(ctx, job)
	if err != nil {
		log.Fatal(err)
	}
	if err := report(os.Stdout, job, res); err != nil {
		log.Fatal(err)
	}
	if files.plot != "" && res.Contact != nil {
		if err := plotContact(files.plot, res); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", files.plot)
	}
	if files.dxf != "" {
		if err := writeDXF(files.dxf, res); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", files.dxf)
	}
}

// outputFiles are the optional files a run writes besides the report.
type outputFiles struct {
	plot string
	dxf  string
}

func parseFlags(args []string) (Job, outputFiles, error) {
	fs := flag.NewFlagSet("gearcalc", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "YAML job file, flags below override it when set")
		plotFile   = fs.String("plot", "", "write the contact sweep chart to this PNG file")
		dxfFile    = fs.String("dxf", "", "write the gear outlines to this DXF file")
		z          = fs.Int("z", 20, "teeth on gear A")
		z2         = fs.Int("z2", 0, "teeth on gear B, 0 skips the contact sweep")
		alpha      = fs.Float64("alpha", 20, "pressure angle [degrees]")
		m          = fs.Float64("m", 2, "module [mm]")
		backlash   = fs.Float64("backlash", 0, "backlash fraction of tooth thickness")
		ka         = fs.Float64("ka", 1, "addendum coefficient")
		kf         = fs.Float64("kf", 1.25, "dedendum coefficient")
		step       = fs.Float64("step", DefaultStep, "outline point spacing [mm]")
		tip        = fs.String("tip", "arc", "tip land style: arc or chord")
		threshold  = fs.Float64("threshold", DefaultThreshold, "contact distance as a fraction of the mean pitch radius")
		samples    = fs.Int("samples", mesh.DefaultSamples, "rotation samples in the contact sweep")
		speed      = fs.Float64("speed", 0, "pitch line velocity for the noise estimate [m/s]")
		power      = fs.Float64("power", 0, "transmitted power for the noise estimate [W], 0 leaves it out")
	)
	if err := fs.Parse(args); err != nil {
		return Job{}, outputFiles{}, err
	}
	job := DefaultJob()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			return Job{}, outputFiles{}, err
		}
		defer f.Close()
		job, err = LoadJob(f)
		if err != nil {
			return Job{}, outputFiles{}, fmt.Errorf("%s: %w", *configFile, err)
		}
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *configFile == "" || set["z"] || set["alpha"] || set["m"] || set["backlash"] || set["ka"] || set["kf"] || set["z2"] {
		a := GearSpec{Teeth: *z, PressureAngle: *alpha, Module: *m, Backlash: *backlash, Addendum: *ka, Dedendum: *kf}
		job.Gears = []GearSpec{a}
		if *z2 > 0 {
			b := a
			b.Teeth = *z2
			job.Gears = append(job.Gears, b)
		}
	}
	if *configFile == "" || set["step"] {
		job.Step = *step
	}
	if *configFile == "" || set["tip"] {
		job.Tip = *tip
	}
	if *configFile == "" || set["threshold"] {
		job.Threshold = *threshold
	}
	if *configFile == "" || set["samples"] {
		job.Samples = *samples
	}
	if *configFile == "" || set["speed"] {
		job.Speed = *speed
	}
	if *configFile == "" || set["power"] {
		job.Power = *power
	}
	return job, outputFiles{plot: *plotFile, dxf: *dxfFile}, job.Validate()
}

// Output of a job run. Noise is nil unless the pair made contact.
type Output struct {
	Gears   []mesh.Gear
	Contact *mesh.Result
	Noise   *float64
}

func run(ctx context.Context, job Job) (Output, error) {
	tipStyle, err := job.TipStyle()
	if err != nil {
		return Output{}, err
	}
	var out Output
	for _, gs := range job.Gears {
		d, profile, err := tooth.Generate(gs.Params(), job.Step, tooth.WithTip(tipStyle))
		if err != nil {
			return Output{}, fmt.Errorf("gear z=%d: %w", gs.Teeth, err)
		}
		out.Gears = append(out.Gears, mesh.Gear{Profile: profile, Params: d})
	}
	if len(out.Gears) == 2 {
		res, err := mesh.MeasureContactRatio(ctx, out.Gears[0], out.Gears[1], job.Threshold, mesh.WithSamples(job.Samples))
		if err != nil {
			return Output{}, err
		}
		out.Contact = &res
		if res.Mean > 0 {
			noise, err := mesh.NoiseLevel(mesh.NoiseParams{
				Ratio:        float64(job.Gears[1].Teeth) / float64(job.Gears[0].Teeth),
				ContactRatio: res.Mean,
				Speed:        job.Speed,
				Power:        job.Power,
			})
			if err != nil {
				return Output{}, fmt.Errorf("noise estimate: %w", err)
			}
			out.Noise = &noise
		}
	}
	return out, nil
}

func report(w io.Writer, job Job, out Output) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range out.Gears {
		fmt.Fprintf(tw, "gear %c\tfillet=%s\tpoints=%d\n", 'A'+rune(i), g.Params.FilletMode(), len(g.Profile))
		named := g.Params.Named()
		keys := make([]string, 0, len(named))
		for k := range named {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(tw, "\t%s\t%.6g\n", k, named[k])
		}
	}
	if out.Contact != nil {
		fmt.Fprintf(tw, "contact ratio\t%.4f\t(threshold %g, %d samples, tip %s)\n",
			out.Contact.Mean, job.Threshold, len(out.Contact.Samples), job.Tip)
	}
	if out.Noise != nil {
		fmt.Fprintf(tw, "noise level\t%.2f\t(speed %g m/s, power %g W)\n", *out.Noise, job.Speed, job.Power)
	}
	return tw.Flush()
}
