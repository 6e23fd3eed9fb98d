// Command rsplan computes the shortest Reed-Shepp path between two poses and
// prints it as a table of sampled poses.
//
// Usage:
//
//	rsplan [flags] x1 y1 θ1 x2 y2 θ2
//
// Headings are given in radians. Settings are read from an optional
// NestedText file rsplan.nt at the usual configuration locations, e.g.
//
//	reedshepp:
//	  radius: 2.5
//	  straightstep: 0.5
//
// Flags given on the command line override the configuration file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/reedshepp"
	"github.com/npillmayer/reedshepp/rspath"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func main() {
	radius := flag.Float64("radius", 1, "turning radius")
	straight := flag.Float64("straight", rspath.DefaultStraightStep, "sampling distance on straight segments")
	step := flag.Float64("step", 0.1, "sampling step on arcs, in radians")
	auto := flag.Bool("auto", false, "derive the sampling step from the poses, using -step as maximum")
	decimals := flag.Int("decimals", 3, "decimals of printed samples")
	level := flag.String("trace", "Error", "trace level: Error, Info or Debug")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: rsplan [flags] x1 y1 θ1 x2 y2 θ2\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 6 {
		flag.Usage()
		os.Exit(2)
	}
	start, goal, err := parsePoses(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading poses: %v\n", err)
		os.Exit(1)
	}

	conf := koanfadapter.New(nil, "rsplan", []string{"nt"})
	conf.InitDefaults()
	conf.Set("trace.root", *level)
	conf.Set("trace.reedshepp.path", *level)
	flag.Visit(func(f *flag.Flag) { // explicit flags override the config file
		switch f.Name {
		case "radius":
			conf.Set(rspath.KeyRadius, strconv.FormatFloat(*radius, 'g', -1, 64))
		case "straight":
			conf.Set(rspath.KeyStraightStep, strconv.FormatFloat(*straight, 'g', -1, 64))
		}
	})
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	cfg, err := rspath.ConfigFrom(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	planner := rspath.NewPlanner(cfg)
	var s rspath.Solution
	var tr rspath.Trajectory
	if *auto {
		s, tr = planner.CurveAutoStep(start, goal, *step)
	} else {
		s, tr = planner.Curve(start, goal, *step)
	}
	report(os.Stdout, cfg, s, tr, *decimals)
	trace2go.Teardown()
}

func parsePoses(args []string) (reedshepp.Pose, reedshepp.Pose, error) {
	var v [6]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return reedshepp.Pose{}, reedshepp.Pose{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = f
	}
	return reedshepp.Pz(v[0], v[1], v[2]), reedshepp.Pz(v[3], v[4], v[5]), nil
}

func report(out io.Writer, cfg *rspath.Config, s rspath.Solution, tr rspath.Trajectory, decimals int) {
	w := bufio.NewWriter(out)
	defer w.Flush()
	fmt.Fprintf(w, "# radius\t%g\n", cfg.Radius())
	fmt.Fprintf(w, "# length\t%g\n", s.Length)
	fmt.Fprintf(w, "# word\t%d\t%s\n", s.Word, s.Word)
	fmt.Fprintf(w, "# t u v\t%g\t%g\t%g\n", s.T, s.U, s.V)
	box := tr.Bounds()
	fmt.Fprintf(w, "# bounds\t(%g,%g)\t(%g,%g)\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	for _, p := range tr.Samples {
		p = p.Floor(decimals)
		fmt.Fprintf(w, "%g\t%g\t%g\n", p.X, p.Y, p.Theta)
	}
}
