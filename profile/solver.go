package profile

import (
	"fmt"
	"math"

	"github.com/npillmayer/welltraj"
	"github.com/npillmayer/welltraj/trajectory"
)

// TargetTolerance is the maximum distance (ft) between the end of a solved
// path and the requested target.
var TargetTolerance float64 = 0.001

// Solution is the result of solving a profile's corner points.
type Solution struct {
	Kind    Kind
	Path    *trajectory.Path
	Derived Derived
}

// Derived collects quantities following from a profile's parameters.
type Derived struct {
	Radii           []float64 // radius of curvature per curved section, in drilling order
	BuildRates      []float64 // °/100 ft per curved section, given or derived
	HoldInclination float64   // inclination of the main tangent, °
	DropAngle       float64   // inclination lost in the drop section, °
	TangentLength   float64   // measured length of the main tangent, ft
	Iterations      int       // iterations of a numeric corner solve
}

// Waypoints returns the corner point table of a solution.
func (sol *Solution) Waypoints() []trajectory.Waypoint {
	return sol.Path.Waypoints()
}

// Segments returns the segments of a solution's path.
func (sol *Solution) Segments() []trajectory.Segment {
	return sol.Path.Segments()
}

// Sample samples a solution's path from the wellhead to the target.
func (sol *Solution) Sample(opts trajectory.SampleOptions) *trajectory.Sample {
	return sol.Path.Sample(opts)
}

// Option configures Solve.
type Option func(*options)

type options struct {
	solver SolverConfig
}

// WithSolverConfig sets the configuration for numeric corner solves.
func WithSolverConfig(cfg SolverConfig) Option {
	return func(o *options) {
		o.solver = cfg
	}
}

// Solve derives the corner points and segments of a profile. It returns
// an error wrapping welltraj.ErrInvalidParameter or
// welltraj.ErrGeometryInfeasible if no path can be constructed; no partial
// solution is returned in that case.
//
// Solve is a pure function: identical parameters yield identical solutions.
func Solve(p Parameters, opts ...Option) (*Solution, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no profile parameters", welltraj.ErrInvalidParameter)
	}
	o := options{solver: DefaultSolverConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tracer().P("profile", p.Kind()).Debugf("solving %+v", p)
	var sol *Solution
	var err error
	switch params := p.(type) {
	case BuildAndHold:
		sol, err = solveBuildAndHold(params)
	case BuildHoldDrop:
		sol, err = solveBuildHoldDrop(params)
	case Slanted:
		sol, err = solveSlanted(params)
	case HorizontalSingle:
		sol, err = solveHorizontalSingle(params)
	case HorizontalDouble:
		sol, err = solveHorizontalDouble(params, o.solver)
	default:
		return nil, fmt.Errorf("%w: unsupported parameter type %T", welltraj.ErrInvalidParameter, p)
	}
	if err != nil {
		tracer().P("profile", p.Kind()).Errorf("%v", err)
		return nil, err
	}
	tracer().P("profile", p.Kind()).Infof("corner points:\n%s", trajectory.AsString(sol.Path))
	return sol, nil
}

// === Circle-tangent corner =================================================

// tangentSweep finds the inclination α (degrees) of the straight line which
// leaves a circle of radius r tangentially and passes through a target. The
// target is offset by (dh,dv) from the circle's center, where the circle
// curves towards the target:
//
//	α = atan(dh/dv) + asin(r·cos(atan(dh/dv)) / dv)
//
// The target has to be below the center (dv > 0) and outside of the circle.
func tangentSweep(dh, dv, r float64) (float64, error) {
	if dv <= 0 {
		return 0, fmt.Errorf("%w: target not below center of curvature (dv = %g)",
			welltraj.ErrGeometryInfeasible, dv)
	}
	x := math.Atan(dh / dv)
	y := r * math.Cos(x) / dv
	tracer().Debugf("tangent sweep: dh = %.4f, dv = %.4f, r = %.4f, asin arg = %.6f", dh, dv, r, y)
	if math.IsNaN(y) || y < -1 || y > 1 {
		return 0, fmt.Errorf("%w: target within radius of curvature %.2f ft", welltraj.ErrGeometryInfeasible, r)
	}
	return welltraj.Deg(x + math.Asin(y)), nil
}

// Profiles which hold or drop to an inclination need it to be below
// horizontal: at 90° the tangent never descends and the corner is undefined.
func belowHorizontal(name string, inc float64) error {
	if inc >= 90 {
		return fmt.Errorf("%w: %s must be below 90°, is %g", welltraj.ErrGeometryInfeasible, name, inc)
	}
	return nil
}

// Check that a hold inclination lies within [lo, 90]. Values a hair below
// lo are snapped to lo.
func checkHold(name string, inc, lo float64) (float64, error) {
	if welltraj.Is0(inc - lo) {
		inc = lo
	}
	if inc < lo || inc > 90 || math.IsNaN(inc) {
		return 0, fmt.Errorf("%w: %s %.4f° outside of [%g°,90°]", welltraj.ErrGeometryInfeasible, name, inc, lo)
	}
	return inc, nil
}

// Length of a straight hold from the end of a path to a target, measured
// along the current inclination.
func holdTo(path *trajectory.Path, target welltraj.Pair) (float64, error) {
	last := path.Last()
	if last.Point().Equal(target) {
		return 0, nil
	}
	l := (target - last.Point()).Dot(welltraj.Heading(last.Inclination))
	if l < 0 {
		if l > -welltraj.Epsilon {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: target lies behind %s", welltraj.ErrGeometryInfeasible, last.Label)
	}
	return l, nil
}

// Make sure a path ends at its target.
func checkTarget(path *trajectory.Path, target welltraj.Pair) error {
	if d := path.Last().Point().Dist(target); d > TargetTolerance || math.IsNaN(d) {
		return fmt.Errorf("%w: path misses target by %.4f ft", welltraj.ErrGeometryInfeasible, d)
	}
	return nil
}
