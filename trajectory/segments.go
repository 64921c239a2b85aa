package trajectory

import (
	"math"

	"github.com/npillmayer/welltraj"
)

// Eval evaluates a segment at measured depth md. md is expected to lie
// within [StartMD, EndMD]; it is not checked.
//
// With Δ = md − StartMD, φ = Δ·rate/100 and θ0 the start inclination:
//
//	vertical     TVD = V0 + Δ               H = H0
//	tangent      TVD = V0 + Δ·cos θ0        H = H0 + Δ·sin θ0
//	horizontal   TVD = V0                   H = H0 + Δ
//	build        TVD = V0 + r(sin θ − sin θ0), H = H0 + r(cos θ0 − cos θ), θ = θ0+φ
//	drop         TVD = V0 + r(sin θ0 − sin θ), H = H0 + r(cos θ − cos θ0), θ = θ0−φ
func (seg Segment) Eval(md float64) Station {
	d := md - seg.StartMD
	v0, h0 := seg.Start.TVD(), seg.Start.H()
	st := Station{
		MD:          md,
		Inclination: seg.StartInclination,
		Secondary:   seg.SecondaryBase,
	}
	switch seg.Kind {
	case Vertical:
		st.TVD, st.H = v0+d, h0
	case Tangent:
		s, c := math.Sincos(welltraj.Rad(seg.StartInclination))
		st.TVD, st.H = v0+d*c, h0+d*s
	case HorizontalTangent:
		st.TVD, st.H = v0, h0+d
	case BuildArc, SecondBuildArc:
		phi := d * seg.Rate / 100
		st.Inclination = seg.StartInclination + phi
		st.TVD, st.H = seg.arcPoint(v0, h0, st.Inclination, 1)
		if seg.Kind == SecondBuildArc {
			st.Secondary += phi
		}
	case DropArc:
		phi := d * seg.Rate / 100
		st.Inclination = seg.StartInclination - phi
		st.TVD, st.H = seg.arcPoint(v0, h0, st.Inclination, -1)
		st.Secondary += phi
	}
	return st
}

// Point on an arc at inclination inc. dir is +1 for arcs turning towards
// horizontal and -1 for arcs turning back towards vertical.
func (seg Segment) arcPoint(v0, h0, inc, dir float64) (float64, float64) {
	r := seg.Radius()
	s0, c0 := math.Sincos(welltraj.Rad(seg.StartInclination))
	s, c := math.Sincos(welltraj.Rad(inc))
	return v0 + dir*r*(s-s0), h0 + dir*r*(c0-c)
}

// At evaluates a path at measured depth md. It returns false if md lies
// outside of [0, MDTotal].
//
// A depth on a segment boundary is evaluated by the segment ending there;
// both neighbours agree on the position at their common boundary.
func (path *Path) At(md float64) (Station, bool) {
	if md < 0 || md > path.MDTotal()+welltraj.Epsilon || math.IsNaN(md) {
		return Station{}, false
	}
	if len(path.segments) == 0 {
		return path.waypoints[0].Station, true
	}
	return path.segments[path.segmentAt(0, md)].Eval(md), true
}

// Find the index of the first segment at or after k whose end is at or
// beyond md. Clamps to the last segment.
func (path *Path) segmentAt(k int, md float64) int {
	for k < len(path.segments)-1 && md > path.segments[k].EndMD {
		k++
	}
	return k
}
