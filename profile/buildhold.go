package profile

import (
	"math"

	"github.com/npillmayer/welltraj"
	"github.com/npillmayer/welltraj/trajectory"
)

// A build-and-hold well kicks off vertically at KOP and builds on a circle
// of radius r centered at (r, KOP) until the tangent meets the target.
func solveBuildAndHold(p BuildAndHold) (*Solution, error) {
	r := welltraj.RadiusOfCurvature(p.BuildRate)
	a, err := tangentSweep(p.TargetH-r, p.TargetTVD-p.KOP, r)
	if err != nil {
		return nil, err
	}
	if a, err = checkHold("inclination", a, 0); err != nil {
		return nil, err
	}
	tracer().Debugf("build-and-hold: r = %.4f, inclination = %.6f°", r, a)
	target := welltraj.P(p.TargetH, p.TargetTVD)
	path := trajectory.Spud(0).Hold(p.KOP, "Kick Off").Build(p.BuildRate, a, "End of Build")
	l, err := holdTo(path, target)
	if err != nil {
		return nil, err
	}
	path = path.Hold(l, "Target").End()
	if err := checkTarget(path, target); err != nil {
		return nil, err
	}
	return &Solution{
		Kind: BuildAndHoldProfile,
		Path: path,
		Derived: Derived{
			Radii:           []float64{r},
			BuildRates:      []float64{p.BuildRate},
			HoldInclination: a,
			TangentLength:   l,
		},
	}, nil
}

// A slanted well is spudded at inclination a1 and follows the slant down to
// KOPMD. From there it builds on a circle tangent to the slant, so the
// circle's center lies r away from the kick-off point, perpendicular to the
// slant. The hold inclination follows from the same circle-tangent corner
// as for build-and-hold wells, measured from that center.
func solveSlanted(p Slanted) (*Solution, error) {
	if err := belowHorizontal("start inclination", p.StartInclination); err != nil {
		return nil, err
	}
	r := welltraj.RadiusOfCurvature(p.BuildRate)
	s1, c1 := math.Sincos(welltraj.Rad(p.StartInclination))
	kop := welltraj.P(p.KOPMD*s1, p.KOPMD*c1)
	center := kop + welltraj.P(r*c1, -r*s1)
	target := welltraj.P(p.TargetH, p.TargetTVD)
	offset := target - center
	a, err := tangentSweep(offset.H(), offset.TVD(), r)
	if err != nil {
		return nil, err
	}
	if a, err = checkHold("hold inclination", a, p.StartInclination); err != nil {
		return nil, err
	}
	tracer().Debugf("slanted: kick off at %s, r = %.4f, inclination %.4f° -> %.6f°",
		kop, r, p.StartInclination, a)
	path := trajectory.Spud(p.StartInclination).Hold(p.KOPMD, "Kick Off").
		Build(p.BuildRate, a, "End of Build")
	l, err := holdTo(path, target)
	if err != nil {
		return nil, err
	}
	path = path.Hold(l, "Target").End()
	if err := checkTarget(path, target); err != nil {
		return nil, err
	}
	return &Solution{
		Kind: SlantedProfile,
		Path: path,
		Derived: Derived{
			Radii:           []float64{r},
			BuildRates:      []float64{p.BuildRate},
			HoldInclination: a,
			TangentLength:   l,
		},
	}, nil
}
