package trajectory

import (
	"fmt"
	"math"

	"github.com/npillmayer/welltraj"
)

// Spud creates a path at the wellhead, to be extended by subsequent builder
// calls. inc is the inclination the well is spudded with, usually 0. The
// following example builds a build-and-hold path:
//
//	path := Spud(0).Hold(1000, "Kick Off").Build(1.5, 35, "End of Build").
//		Hold(8000, "Target").End()
//
// Builder calls panic on misuse (e.g. building an arc in the wrong
// direction); they never check whether a target is reached.
func Spud(inc float64) *Path {
	path := &Path{
		waypoints: make([]Waypoint, 1, 6),
		segments:  make([]Segment, 0, 5),
	}
	path.waypoints[0] = Waypoint{
		Label:   "Start",
		Station: Station{Inclination: inc},
	}
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	tracer().Debugf("path complete:\n%s", AsString(path))
	return path
}

// Hold adds a straight section of measured length l at the current
// inclination. Part of builder functionality.
func (path *Path) Hold(l float64, label string) *Path {
	if l < 0 {
		panic(fmt.Sprintf("cannot hold for negative length %g", l))
	}
	inc := path.Last().Inclination
	kind := Tangent
	if welltraj.Is0(inc) {
		kind = Vertical
	} else if welltraj.Is0(inc - 90) {
		kind = HorizontalTangent
	}
	return path.appendSegment(kind, l, inc, 0, label)
}

// Build adds a circular arc increasing the inclination to toInc at a
// build rate of rate degrees per 100 ft. Part of builder functionality.
func (path *Path) Build(rate, toInc float64, label string) *Path {
	return path.arc(BuildArc, rate, toInc, label)
}

// Drop adds a circular arc decreasing the inclination to toInc at a
// drop rate of rate degrees per 100 ft. Part of builder functionality.
func (path *Path) Drop(rate, toInc float64, label string) *Path {
	return path.arc(DropArc, rate, toInc, label)
}

// SecondBuild adds a second circular build arc to toInc. It differs from
// Build in tracking its sweep as the secondary angle.
// Part of builder functionality.
func (path *Path) SecondBuild(rate, toInc float64, label string) *Path {
	return path.arc(SecondBuildArc, rate, toInc, label)
}

func (path *Path) arc(kind Kind, rate, toInc float64, label string) *Path {
	if rate <= 0 {
		panic(fmt.Sprintf("cannot add %s arc with rate %g", kind, rate))
	}
	inc := path.Last().Inclination
	sweep := toInc - inc
	if kind == DropArc {
		sweep = -sweep
	}
	if sweep < 0 {
		panic(fmt.Sprintf("cannot add %s arc from %g° to %g°", kind, inc, toInc))
	}
	return path.appendSegment(kind, sweep*100/rate, toInc, rate, label)
}

// Append a segment of length l starting at the current end of the path,
// together with a waypoint at its end.
func (path *Path) appendSegment(kind Kind, l, toInc, rate float64, label string) *Path {
	last := path.Last()
	seg := Segment{
		Kind:             kind,
		StartMD:          last.MD,
		EndMD:            last.MD + l,
		Start:            last.Point(),
		StartInclination: last.Inclination,
		EndInclination:   toInc,
		Rate:             rate,
		SecondaryBase:    path.secondary,
	}
	end := seg.Eval(seg.EndMD)
	end.Inclination = toInc
	if kind == DropArc || kind == SecondBuildArc {
		path.secondary += math.Abs(toInc - last.Inclination)
		end.Secondary = path.secondary
	}
	tracer().Debugf("%s segment [%.2f, %.2f] ends at %s", kind, seg.StartMD, seg.EndMD, end.Point())
	path.segments = append(path.segments, seg)
	path.waypoints = append(path.waypoints, Waypoint{Label: label, Station: end})
	return path
}
