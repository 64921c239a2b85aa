/*
Package profile derives the corner points of standard directional well
profiles from a small set of target parameters.

Five profile archetypes are supported:

	BuildAndHold       kick off, build, hold to target
	BuildHoldDrop      kick off, build, hold, drop, hold to target ("S" well)
	Slanted            spudded inclined, build, hold to target
	HorizontalSingle   kick off, build to 90°, horizontal section
	HorizontalDouble   kick off, build, hold, second build to 90°, horizontal section

Clients fill in one of the parameter types and call Solve:

	sol, err := profile.Solve(profile.BuildAndHold{
		KOP: 1000, TargetTVD: 10000, TargetH: 6000, BuildRate: 1.5,
	})

The resulting Solution holds the path (waypoints and segments, see package
trajectory) together with the derived quantities of the profile, e.g. the
radii of curvature and the hold inclination.

Solve never returns a partial result. Parameters violating a structural
precondition yield an error wrapping welltraj.ErrInvalidParameter, targets
the profile cannot reach an error wrapping welltraj.ErrGeometryInfeasible.

Four of the profiles have closed-form corners. HorizontalDouble needs the
tangent length and the second radius from two simultaneous equations,
which are solved numerically (Newton–Raphson, see SolverConfig).

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package profile

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'welltraj.profile'
func tracer() tracing.Trace {
	return tracing.Select("welltraj.profile")
}
