package profile

import (
	"fmt"
	"math"

	"github.com/npillmayer/welltraj"
	"github.com/npillmayer/welltraj/trajectory"
)

// A horizontal well with a single buildup lands at 90° exactly at the
// start of the horizontal section. The build circle therefore has its
// center at (0, TargetTVD) and radius r = TargetH − HorizontalLength; the
// kick-off depth and the build rate follow from r.
func solveHorizontalSingle(p HorizontalSingle) (*Solution, error) {
	r := p.TargetH - p.HorizontalLength
	if r <= 0 {
		return nil, fmt.Errorf("%w: horizontal section %g ft leaves no room for a buildup to target H %g ft",
			welltraj.ErrGeometryInfeasible, p.HorizontalLength, p.TargetH)
	}
	kop := p.TargetTVD - r
	if kop < 0 {
		return nil, fmt.Errorf("%w: buildup radius %g ft exceeds target TVD %g ft",
			welltraj.ErrGeometryInfeasible, r, p.TargetTVD)
	}
	rate := welltraj.BuildRateForRadius(r)
	tracer().Debugf("horizontal: r = %.4f, KOP = %.4f, build rate = %.6f°/100ft", r, kop, rate)
	path := trajectory.Spud(0).Hold(kop, "Kick Off").
		Build(rate, 90, "End of Build").
		Hold(p.HorizontalLength, "Target").End()
	if err := checkTarget(path, welltraj.P(p.TargetH, p.TargetTVD)); err != nil {
		return nil, err
	}
	return &Solution{
		Kind: HorizontalSingleProfile,
		Path: path,
		Derived: Derived{
			Radii:           []float64{r},
			BuildRates:      []float64{rate},
			HoldInclination: 90,
			TangentLength:   p.HorizontalLength,
		},
	}, nil
}

// A horizontal well with two buildups builds to a1 at r1, holds for CD,
// then builds the remaining 90° − a1 at r2 to land at the start of the
// horizontal section E = (TargetH − HorizontalLength, TargetTVD). With C the
// end of the first build, CD and r2 have to satisfy
//
//	Vc + CD·cos a1 + r2·(1 − sin a1) = TargetTVD
//	Hc + CD·sin a1 + r2·cos a1       = TargetH − HorizontalLength
//
// which are solved numerically for (CD, r2).
func solveHorizontalDouble(p HorizontalDouble, cfg SolverConfig) (*Solution, error) {
	if err := belowHorizontal("first build inclination", p.FirstBuildInclination); err != nil {
		return nil, err
	}
	r1 := welltraj.RadiusOfCurvature(p.BuildRate1)
	s1, c1 := math.Sincos(welltraj.Rad(p.FirstBuildInclination))
	eob := welltraj.P(r1*(1-c1), p.KOP+r1*s1)
	entry := welltraj.P(p.TargetH-p.HorizontalLength, p.TargetTVD)
	if entry.TVD() <= eob.TVD() || entry.H() <= eob.H() {
		return nil, fmt.Errorf("%w: first build ends at %s, beyond entry of horizontal section %s",
			welltraj.ErrGeometryInfeasible, eob, entry)
	}
	residuals := func(dst, x []float64) {
		cd, r2 := x[0], x[1]
		dst[0] = eob.TVD() + cd*c1 + r2*(1-s1) - entry.TVD()
		dst[1] = eob.H() + cd*s1 + r2*c1 - entry.H()
	}
	x, iter, err := newton2(residuals, [2]float64{0, r1}, cfg)
	if err != nil {
		return nil, err
	}
	cd, r2 := x[0], x[1]
	tracer().Debugf("horizontal double: CD = %.6f, r2 = %.6f after %d iterations", cd, r2, iter)
	if cd < 0 && cd > -cfg.Tolerance {
		cd = 0
	}
	if cd < 0 || r2 <= 0 {
		return nil, fmt.Errorf("%w: no tangent length >= 0 and second radius > 0 (CD = %.2f ft, r2 = %.2f ft)",
			welltraj.ErrGeometryInfeasible, cd, r2)
	}
	rate2 := welltraj.BuildRateForRadius(r2)
	path := trajectory.Spud(0).Hold(p.KOP, "Kick Off").
		Build(p.BuildRate1, p.FirstBuildInclination, "End of Build 1").
		Hold(cd, "Start of Build 2").
		SecondBuild(rate2, 90, "End of Build 2").
		Hold(p.HorizontalLength, "Target").End()
	if err := checkTarget(path, welltraj.P(p.TargetH, p.TargetTVD)); err != nil {
		return nil, err
	}
	return &Solution{
		Kind: HorizontalDoubleProfile,
		Path: path,
		Derived: Derived{
			Radii:           []float64{r1, r2},
			BuildRates:      []float64{p.BuildRate1, rate2},
			HoldInclination: p.FirstBuildInclination,
			TangentLength:   cd,
			Iterations:      iter,
		},
	}, nil
}
