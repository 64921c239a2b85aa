/*
Package welltraj implements the shared geometry of directional well paths:
points in the vertical section, radius of curvature for a build rate,
angle conversion and the error kinds reported by the profile solvers.

Well paths live in the vertical plane through wellhead and target. Throughout
this module H (horizontal displacement) is the x-part of a point and TVD
(true vertical depth, growing downwards) is its y-part. All lengths are in
feet, all angles handed to or returned from the API are in degrees.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package welltraj

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'welltraj'
func tracer() tracing.Trace {
	return tracing.Select("welltraj")
}

var (
	// ErrInvalidParameter indicates a violated structural precondition of a
	// parameter set, e.g. a zero build rate or a negative length.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrGeometryInfeasible indicates parameters which are valid one by one,
	// but describe a target the profile geometry cannot reach.
	ErrGeometryInfeasible = errors.New("geometry infeasible")
)

// --- Angles and tolerances ------------------------------------------------

// Deg2Rad converts inclinations given in degrees to radians.
const Deg2Rad float64 = math.Pi / 180

// Epsilon is the tolerance (ft or °) below which a quantity counts as zero.
var Epsilon = 1e-7

// Is0 is a predicate: is |n| within Epsilon?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap snaps n to 0 if it is within Epsilon.
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * Deg2Rad
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad / Deg2Rad
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// --- Curvature -------------------------------------------------------------

// RadiusOfCurvature returns the radius of a circular arc whose curvature
// equals a build rate given in degrees per 100 ft.
//
//	r = 18000 / (π · rate)
//
// The rate has to be positive; callers check this beforehand.
func RadiusOfCurvature(rate float64) float64 {
	return 18000 / (math.Pi * rate)
}

// BuildRateForRadius is the inverse of RadiusOfCurvature: it returns the
// build rate in degrees per 100 ft of an arc with radius r.
func BuildRateForRadius(r float64) float64 {
	return 18000 / (math.Pi * r)
}

// CheckBuildRate returns an ErrInvalidParameter if rate is not a usable
// build rate, i.e. not strictly positive and finite.
func CheckBuildRate(name string, rate float64) error {
	if !IsFinite(rate) || rate <= 0 {
		tracer().Errorf("rejected build rate %s = %g", name, rate)
		return fmt.Errorf("%w: build rate %s must be > 0, is %g", ErrInvalidParameter, name, rate)
	}
	return nil
}

// CheckLength returns an ErrInvalidParameter if n is not a usable depth or
// length, i.e. negative or not finite.
func CheckLength(name string, n float64) error {
	if !IsFinite(n) || n < 0 {
		tracer().Errorf("rejected length %s = %g", name, n)
		return fmt.Errorf("%w: %s must be >= 0, is %g", ErrInvalidParameter, name, n)
	}
	return nil
}

// CheckInclination returns an ErrInvalidParameter if deg is outside of
// [0, 90] degrees.
func CheckInclination(name string, deg float64) error {
	if !IsFinite(deg) || deg < 0 || deg > 90 {
		tracer().Errorf("rejected inclination %s = %g", name, deg)
		return fmt.Errorf("%w: inclination %s must be within [0,90], is %g", ErrInvalidParameter, name, deg)
	}
	return nil
}

// --- Points in the vertical section ---------------------------------------

// Pair is a point in the vertical section: x-part is H, y-part is TVD.
type Pair complex128

// String formats a pair as (H,TVD).
func (p Pair) String() string {
	return fmt.Sprintf("(H=%.4f,TVD=%.4f)", p.H(), p.TVD())
}

// C returns p as a complex number, H being the real part.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P creates a point from horizontal displacement and vertical depth.
func P(h, tvd float64) Pair {
	return Pair(complex(h, tvd))
}

// H is the horizontal displacement of a pair.
func (p Pair) H() float64 {
	return real(p.C())
}

// TVD is the true vertical depth of a pair.
func (p Pair) TVD() float64 {
	return imag(p.C())
}

// Zap rounds H and TVD to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.H()), Zap(p.TVD()))
}

// Equal is true if both coordinates agree within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.H()-p2.H()) && Is0(p.TVD()-p2.TVD())
}

// Dist returns the euclidean distance between two pairs.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs(p2.C() - p.C())
}

// Heading returns the unit vector of a well bore with inclination inc
// (degrees from vertical). Components within Epsilon of 0 are snapped to 0,
// so vertical and horizontal headings are exact.
func Heading(inc float64) Pair {
	s, c := math.Sincos(Rad(inc))
	return P(s, c).Zap()
}

// Dot returns the scalar product of two pairs.
func (p Pair) Dot(p2 Pair) float64 {
	return p.H()*p2.H() + p.TVD()*p2.TVD()
}
