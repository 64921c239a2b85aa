package trajectory

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/welltraj"
)

// tracer writes to trace with key 'welltraj.trajectory'
func tracer() tracing.Trace {
	return tracing.Select("welltraj.trajectory")
}

// Kind is the kind of a path segment.
type Kind int8

// Segment kinds.
const (
	Vertical          Kind = iota // straight down, inclination 0°
	BuildArc                      // circular arc, inclination increasing
	Tangent                       // straight, constant inclination
	DropArc                       // circular arc, inclination decreasing
	SecondBuildArc                // second circular arc, inclination increasing
	HorizontalTangent             // straight, inclination 90°
)

func (k Kind) String() string {
	switch k {
	case Vertical:
		return "vertical"
	case BuildArc:
		return "build"
	case Tangent:
		return "tangent"
	case DropArc:
		return "drop"
	case SecondBuildArc:
		return "second-build"
	case HorizontalTangent:
		return "horizontal"
	}
	return "<unknown>"
}

// IsArc is a predicate: is this a curved segment kind?
func (k Kind) IsArc() bool {
	return k == BuildArc || k == DropArc || k == SecondBuildArc
}

// Station is a path evaluated at measured depth MD. Inclination and
// Secondary are in degrees, everything else in feet.
type Station struct {
	MD          float64
	TVD         float64
	H           float64
	Inclination float64
	Secondary   float64 // progress of a second curve, see package doc
}

// Point returns the position of a station in the vertical section.
func (st Station) Point() welltraj.Pair {
	return welltraj.P(st.H, st.TVD)
}

// Waypoint is a labeled corner point of a path.
type Waypoint struct {
	Label string
	Station
}

// Segment is one piece of a path, covering [StartMD, EndMD].
//
// Segments are created by the path builder and are read-only afterwards.
// Start is the evaluated end point of the predecessor segment, which keeps a
// path continuous at segment boundaries.
type Segment struct {
	Kind             Kind
	StartMD          float64
	EndMD            float64
	Start            welltraj.Pair // (H,TVD) at StartMD
	StartInclination float64       // degrees
	EndInclination   float64       // degrees
	Rate             float64       // degrees per 100 ft, arcs only
	SecondaryBase    float64       // secondary angle at StartMD
}

// Length returns the measured length of a segment.
func (seg Segment) Length() float64 {
	return seg.EndMD - seg.StartMD
}

// Radius returns the radius of curvature of an arc segment. It is 0 for
// straight segments.
func (seg Segment) Radius() float64 {
	if !seg.Kind.IsArc() {
		return 0
	}
	return welltraj.RadiusOfCurvature(seg.Rate)
}

// Path is the concrete type for a well path. To construct a path, start
// with Spud(), which creates a path at the wellhead, and then extend it.
type Path struct {
	waypoints []Waypoint // corner points, first one is the wellhead
	segments  []Segment  // segment i connects waypoint i and i+1
	secondary float64    // running secondary angle at the path's end
}

// N returns the number of waypoints of a path.
func (path *Path) N() int {
	return len(path.waypoints)
}

// Waypoint returns corner point i.
func (path *Path) Waypoint(i int) Waypoint {
	return path.waypoints[i]
}

// Waypoints returns a copy of the corner points of a path.
func (path *Path) Waypoints() []Waypoint {
	wps := make([]Waypoint, len(path.waypoints))
	copy(wps, path.waypoints)
	return wps
}

// Segments returns a copy of the segments of a path.
func (path *Path) Segments() []Segment {
	segs := make([]Segment, len(path.segments))
	copy(segs, path.segments)
	return segs
}

// Last returns the last corner point of a path.
func (path *Path) Last() Waypoint {
	return path.waypoints[len(path.waypoints)-1]
}

// MDTotal returns the measured depth of the last corner point.
func (path *Path) MDTotal() float64 {
	return path.Last().MD
}
