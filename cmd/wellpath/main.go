// Command wellpath solves a directional well profile, prints its corner
// points and optionally exports the sampled path.
//
//	wellpath -profile build-hold -kop 1000 -tvd 10000 -h 6000 -rate 1.5 -csv path.csv -png path.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/welltraj/internal/render"
	"github.com/npillmayer/welltraj/profile"
	"github.com/npillmayer/welltraj/trajectory"
)

type config struct {
	profile string
	kop     float64
	tvd     float64
	h       float64
	rate    float64
	rate2   float64
	dropEnd float64
	dropInc float64
	inc     float64
	length  float64

	samples int
	step    float64
	tol     float64
	maxIter int

	csv   string
	png   string
	html  string
	title string
	trace string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("wellpath: %v", err)
	}
}

// run executes a command line. The result goes to out, traces of all
// packages go to traceOut if tracing is enabled with -trace.
func run(args []string, out, traceOut io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.trace != "" {
		setupTracing(cfg.trace, traceOut)
	}
	kind, err := profile.ParseKind(cfg.profile)
	if err != nil {
		return err
	}
	params := paramsFor(kind, cfg)
	solverCfg := profile.DefaultSolverConfig()
	if cfg.tol > 0 {
		solverCfg.Tolerance = cfg.tol
	}
	if cfg.maxIter > 0 {
		solverCfg.MaxIterations = cfg.maxIter
	}
	sol, err := profile.Solve(params, profile.WithSolverConfig(solverCfg))
	if err != nil {
		return err
	}
	fmt.Fprint(out, trajectory.AsString(sol.Path))
	printDerived(out, sol)

	s := sol.Sample(trajectory.SampleOptions{Count: cfg.samples, Spacing: cfg.step})
	title := cfg.title
	if title == "" {
		title = fmt.Sprintf("%s well path", kind)
	}
	if cfg.csv != "" {
		if err := writeFile(cfg.csv, func(w io.Writer) error {
			return render.CSV(w, s)
		}); err != nil {
			return err
		}
	}
	if cfg.png != "" {
		if err := writeFile(cfg.png, func(w io.Writer) error {
			return render.Image(w, imageFormat(cfg.png), title, s, sol.Waypoints())
		}); err != nil {
			return err
		}
	}
	if cfg.html != "" {
		if err := writeFile(cfg.html, func(w io.Writer) error {
			return render.Chart(w, title, s, sol.Waypoints())
		}); err != nil {
			return err
		}
	}
	return nil
}

// sharedTracer selects the same tracer for every trace key.
type sharedTracer struct {
	tracer tracing.Trace
}

func (sel sharedTracer) Select(string) tracing.Trace {
	return sel.tracer
}

func setupTracing(level string, w io.Writer) {
	tr := gologadapter.New()
	tr.SetOutput(w)
	tr.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(sharedTracer{tracer: tr})
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("wellpath", flag.ContinueOnError)
	fs.StringVar(&cfg.profile, "profile", "build-hold",
		"profile: build-hold, build-hold-drop, slanted, horizontal, horizontal-double")
	fs.Float64Var(&cfg.kop, "kop", 0, "kick-off depth in ft (measured depth along the slant for slanted)")
	fs.Float64Var(&cfg.tvd, "tvd", 0, "target true vertical depth in ft")
	fs.Float64Var(&cfg.h, "h", 0, "target horizontal displacement in ft")
	fs.Float64Var(&cfg.rate, "rate", 0, "build rate in °/100 ft")
	fs.Float64Var(&cfg.rate2, "rate2", 0, "drop rate in °/100 ft (build-hold-drop)")
	fs.Float64Var(&cfg.dropEnd, "drop-end", 0, "true vertical depth at end of drop in ft (build-hold-drop)")
	fs.Float64Var(&cfg.dropInc, "drop-inc", 0, "inclination after the drop in ° (build-hold-drop)")
	fs.Float64Var(&cfg.inc, "inc", 0, "start inclination (slanted) or first build inclination (horizontal-double) in °")
	fs.Float64Var(&cfg.length, "length", 0, "length of the horizontal section in ft")
	fs.IntVar(&cfg.samples, "samples", 0, "number of samples along the path (default 10000)")
	fs.Float64Var(&cfg.step, "step", 0, "sample spacing in ft; overrides -samples")
	fs.Float64Var(&cfg.tol, "tol", 0, "solver tolerance in ft (horizontal-double)")
	fs.IntVar(&cfg.maxIter, "maxiter", 0, "solver iteration cap (horizontal-double)")
	fs.StringVar(&cfg.csv, "csv", "", "write the sampled path as CSV to this file")
	fs.StringVar(&cfg.png, "png", "", "write a plot of the path to this file (.png or .svg)")
	fs.StringVar(&cfg.html, "html", "", "write an interactive chart of the path to this file")
	fs.StringVar(&cfg.title, "title", "", "title of plot and chart")
	fs.StringVar(&cfg.trace, "trace", "", "trace to stderr at level error, info or debug")
	err := fs.Parse(args)
	return cfg, err
}

func paramsFor(kind profile.Kind, cfg config) profile.Parameters {
	switch kind {
	case profile.BuildHoldDropProfile:
		return profile.BuildHoldDrop{
			KOP:             cfg.kop,
			TargetTVD:       cfg.tvd,
			TargetH:         cfg.h,
			DropEndTVD:      cfg.dropEnd,
			BuildRate1:      cfg.rate,
			BuildRate2:      cfg.rate2,
			DropInclination: cfg.dropInc,
		}
	case profile.SlantedProfile:
		return profile.Slanted{
			KOPMD:            cfg.kop,
			TargetTVD:        cfg.tvd,
			TargetH:          cfg.h,
			StartInclination: cfg.inc,
			BuildRate:        cfg.rate,
		}
	case profile.HorizontalSingleProfile:
		return profile.HorizontalSingle{
			TargetTVD:        cfg.tvd,
			TargetH:          cfg.h,
			HorizontalLength: cfg.length,
		}
	case profile.HorizontalDoubleProfile:
		return profile.HorizontalDouble{
			KOP:                   cfg.kop,
			TargetTVD:             cfg.tvd,
			TargetH:               cfg.h,
			HorizontalLength:      cfg.length,
			FirstBuildInclination: cfg.inc,
			BuildRate1:            cfg.rate,
		}
	}
	return profile.BuildAndHold{
		KOP:       cfg.kop,
		TargetTVD: cfg.tvd,
		TargetH:   cfg.h,
		BuildRate: cfg.rate,
	}
}

func printDerived(out io.Writer, sol *profile.Solution) {
	d := sol.Derived
	fmt.Fprintln(out)
	for i, r := range d.Radii {
		fmt.Fprintf(out, "Curve %d: radius %.2f ft, rate %.4f °/100 ft\n", i+1, r, d.BuildRates[i])
	}
	fmt.Fprintf(out, "Hold inclination: %.4f °\n", d.HoldInclination)
	if d.DropAngle > 0 {
		fmt.Fprintf(out, "Drop angle: %.4f °\n", d.DropAngle)
	}
	fmt.Fprintf(out, "Tangent length: %.2f ft\n", d.TangentLength)
	if d.Iterations > 0 {
		fmt.Fprintf(out, "Solver iterations: %d\n", d.Iterations)
	}
	fmt.Fprintf(out, "Total measured depth: %.2f ft\n", sol.Path.MDTotal())
}

func imageFormat(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".svg") {
		return "svg"
	}
	return "png"
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}
