/*
Package trajectory models a 2D well path as a chain of segments and
evaluates it at arbitrary measured depth.

A path is a sequence of segments: vertical sections, straight tangents,
circular build, drop and second-build arcs, and a horizontal section. Every
segment knows its closed-form position as a function of measured depth (MD);
no segment needs iteration to be evaluated.

Usage

Clients build a path with a builder, starting at the wellhead:

	path := Spud(0).
		Hold(1000, "Kick Off").
		Build(1.5, 34.6, "End of Build").
		Hold(8070, "Target").End()

Each builder call appends one segment and one waypoint (corner point). The
kind of a hold section is chosen by the current inclination: vertical at 0°,
horizontal at 90°, a tangent in between. Building a path does not check the
geometry for feasibility; package profile derives corner points from target
parameters and is the usual producer of paths.

A path is evaluated at a single depth with

	station, ok := path.At(md)

or sampled densely from the wellhead to the last waypoint with

	sample := path.Sample(SampleOptions{Count: 10000})

The returned sample holds parallel slices (MD, TVD, H, inclination and a
secondary angle) ready for tabulation and plotting.

Secondary angle

Profiles with two curved sections report the progress of the second curve
as a secondary angle: the accumulated drop angle for a drop arc, or the
accumulated sweep of a second build arc. It is 0 before the second curve
and stays at the full sweep afterwards.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trajectory

import (
	"fmt"
	"strings"
)

// AsString returns the waypoint table of a path as a (debugging) string,
// one corner point per line:
//
//	Point               MD(ft)     TVD(ft)       H(ft)   Inc(°)
//	Start                 0.00        0.00        0.00     0.00
//	Kick Off           1000.00     1000.00        0.00     0.00
//	...
func AsString(path *Path) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-16s %11s %11s %11s %8s\n", "Point", "MD(ft)", "TVD(ft)", "H(ft)", "Inc(°)"))
	for _, wp := range path.waypoints {
		b.WriteString(fmt.Sprintf("%-16s %11.2f %11.2f %11.2f %8.2f\n",
			wp.Label, wp.MD, wp.TVD, wp.H, wp.Inclination))
	}
	return b.String()
}
