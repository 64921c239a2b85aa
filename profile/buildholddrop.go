package profile

import (
	"fmt"
	"math"

	"github.com/npillmayer/welltraj"
	"github.com/npillmayer/welltraj/trajectory"
)

// A build-hold-drop well has two arcs curving in opposite directions,
// joined by a tangent. The tangent touches both circles, therefore it is
// an inner tangent of the build circle (center O, radius r1) and the drop
// circle (center Q, radius r2).
//
// The drop circle is fixed by the end of the drop: at TVD Ve the well has
// inclination a2 and heads straight for the target. The classic S-well
// construction then gives:
//
//	OQ = Ht − r1 − r2·cos a2 − (Vt − Ve)·tan a2    horizontal offset of Q
//	OP = Ve − KOP + r2·sin a2                      vertical offset of Q
//	QS = r1 + r2
//	PQ = √(OP² + OQ²)
//	PS = √(PQ² − QS²)                              length of the tangent
//	a1 = atan(OQ/OP) + atan(QS/PS)                 hold inclination
func solveBuildHoldDrop(p BuildHoldDrop) (*Solution, error) {
	if err := belowHorizontal("drop inclination", p.DropInclination); err != nil {
		return nil, err
	}
	r1 := welltraj.RadiusOfCurvature(p.BuildRate1)
	r2 := welltraj.RadiusOfCurvature(p.BuildRate2)
	s2, c2 := math.Sincos(welltraj.Rad(p.DropInclination))
	oq := p.TargetH - r1 - r2*c2 - (p.TargetTVD-p.DropEndTVD)*s2/c2
	op := p.DropEndTVD - p.KOP + r2*s2
	qs := r1 + r2
	pq := math.Hypot(op, oq)
	tracer().Debugf("build-hold-drop: r1 = %.4f, r2 = %.4f, OQ = %.4f, OP = %.4f, PQ = %.4f",
		r1, r2, oq, op, pq)
	if pq <= qs {
		return nil, fmt.Errorf("%w: build and drop circles overlap (PQ = %.2f ft <= r1+r2 = %.2f ft)",
			welltraj.ErrGeometryInfeasible, pq, qs)
	}
	ps := math.Sqrt(pq*pq - qs*qs)
	a1 := welltraj.Deg(math.Atan(oq/op) + math.Atan(qs/ps))
	a1, err := checkHold("hold inclination", a1, p.DropInclination)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("build-hold-drop: hold inclination = %.6f°, drop angle = %.6f°", a1, a1-p.DropInclination)
	target := welltraj.P(p.TargetH, p.TargetTVD)
	path := trajectory.Spud(0).Hold(p.KOP, "Kick Off").
		Build(p.BuildRate1, a1, "End of Build").
		Hold(ps, "Start of Drop").
		Drop(p.BuildRate2, p.DropInclination, "End of Drop")
	l, err := holdTo(path, target)
	if err != nil {
		return nil, err
	}
	path = path.Hold(l, "Target").End()
	if err := checkTarget(path, target); err != nil {
		return nil, err
	}
	return &Solution{
		Kind: BuildHoldDropProfile,
		Path: path,
		Derived: Derived{
			Radii:           []float64{r1, r2},
			BuildRates:      []float64{p.BuildRate1, p.BuildRate2},
			HoldInclination: a1,
			DropAngle:       a1 - p.DropInclination,
			TangentLength:   ps,
		},
	}, nil
}
