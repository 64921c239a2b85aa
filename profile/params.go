package profile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/welltraj"
)

// Kind identifies a well profile archetype.
type Kind int8

// Profile archetypes.
const (
	BuildAndHoldProfile Kind = iota
	BuildHoldDropProfile
	SlantedProfile
	HorizontalSingleProfile
	HorizontalDoubleProfile
)

var kindNames = [...]string{
	"build-hold",
	"build-hold-drop",
	"slanted",
	"horizontal",
	"horizontal-double",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// ParseKind returns the profile kind for a name as returned by Kind.String.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown profile %q", welltraj.ErrInvalidParameter, name)
}

// Parameters is the set of target parameters of one profile archetype.
// It is implemented by BuildAndHold, BuildHoldDrop, Slanted,
// HorizontalSingle and HorizontalDouble.
type Parameters interface {
	Kind() Kind
	// Validate checks the structural preconditions of a parameter set.
	// It does not check whether the target is reachable.
	Validate() error
}

// BuildAndHold holds the parameters of a build-and-hold profile.
type BuildAndHold struct {
	KOP       float64 // kick-off depth, ft
	TargetTVD float64 // ft
	TargetH   float64 // horizontal displacement of target, ft
	BuildRate float64 // °/100 ft
}

// BuildHoldDrop holds the parameters of a build-hold-drop ("S") profile.
type BuildHoldDrop struct {
	KOP             float64 // kick-off depth, ft
	TargetTVD       float64 // ft
	TargetH         float64 // ft
	DropEndTVD      float64 // TVD at end of drop, ft
	BuildRate1      float64 // build rate, °/100 ft
	BuildRate2      float64 // drop rate, °/100 ft
	DropInclination float64 // inclination after the drop, °
}

// Slanted holds the parameters of a slanted-buildup profile. The well is
// spudded at StartInclination and kicks off at measured depth KOPMD.
type Slanted struct {
	KOPMD            float64 // ft, measured along the slant
	TargetTVD        float64 // ft
	TargetH          float64 // ft
	StartInclination float64 // °
	BuildRate        float64 // °/100 ft
}

// HorizontalSingle holds the parameters of a horizontal well with a single
// buildup. TargetH is the displacement at the end of the horizontal
// section. Kick-off depth and build rate follow from the geometry.
type HorizontalSingle struct {
	TargetTVD        float64 // ft
	TargetH          float64 // ft
	HorizontalLength float64 // ft
}

// HorizontalDouble holds the parameters of a horizontal well with two
// buildups joined by a tangent. TargetH is the displacement at the end of
// the horizontal section. The second build rate follows from the geometry.
type HorizontalDouble struct {
	KOP                   float64 // kick-off depth, ft
	TargetTVD             float64 // ft
	TargetH               float64 // ft
	HorizontalLength      float64 // ft
	FirstBuildInclination float64 // inclination at end of first build, °
	BuildRate1            float64 // °/100 ft
}

// Kind is part of interface Parameters.
func (p BuildAndHold) Kind() Kind { return BuildAndHoldProfile }

// Kind is part of interface Parameters.
func (p BuildHoldDrop) Kind() Kind { return BuildHoldDropProfile }

// Kind is part of interface Parameters.
func (p Slanted) Kind() Kind { return SlantedProfile }

// Kind is part of interface Parameters.
func (p HorizontalSingle) Kind() Kind { return HorizontalSingleProfile }

// Kind is part of interface Parameters.
func (p HorizontalDouble) Kind() Kind { return HorizontalDoubleProfile }

// Validate is part of interface Parameters.
func (p BuildAndHold) Validate() error {
	return firstError(
		welltraj.CheckLength("KOP", p.KOP),
		welltraj.CheckLength("target TVD", p.TargetTVD),
		welltraj.CheckLength("target H", p.TargetH),
		welltraj.CheckBuildRate("build rate", p.BuildRate),
		below("KOP", p.KOP, "target TVD", p.TargetTVD),
	)
}

// Validate is part of interface Parameters.
func (p BuildHoldDrop) Validate() error {
	err := firstError(
		welltraj.CheckLength("KOP", p.KOP),
		welltraj.CheckLength("target TVD", p.TargetTVD),
		welltraj.CheckLength("target H", p.TargetH),
		welltraj.CheckLength("end of drop TVD", p.DropEndTVD),
		welltraj.CheckBuildRate("build rate 1", p.BuildRate1),
		welltraj.CheckBuildRate("build rate 2", p.BuildRate2),
		welltraj.CheckInclination("drop inclination", p.DropInclination),
		below("KOP", p.KOP, "target TVD", p.TargetTVD),
		below("KOP", p.KOP, "end of drop TVD", p.DropEndTVD),
	)
	if err != nil {
		return err
	}
	if p.DropEndTVD > p.TargetTVD {
		return fmt.Errorf("%w: end of drop TVD %g is below target TVD %g",
			welltraj.ErrInvalidParameter, p.DropEndTVD, p.TargetTVD)
	}
	return nil
}

// Validate is part of interface Parameters.
func (p Slanted) Validate() error {
	return firstError(
		welltraj.CheckLength("KOP MD", p.KOPMD),
		welltraj.CheckLength("target TVD", p.TargetTVD),
		welltraj.CheckLength("target H", p.TargetH),
		welltraj.CheckInclination("start inclination", p.StartInclination),
		welltraj.CheckBuildRate("build rate", p.BuildRate),
		below("KOP MD", p.KOPMD, "target TVD", p.TargetTVD),
	)
}

// Validate is part of interface Parameters.
func (p HorizontalSingle) Validate() error {
	return firstError(
		welltraj.CheckLength("target TVD", p.TargetTVD),
		welltraj.CheckLength("target H", p.TargetH),
		welltraj.CheckLength("horizontal length", p.HorizontalLength),
	)
}

// Validate is part of interface Parameters.
func (p HorizontalDouble) Validate() error {
	return firstError(
		welltraj.CheckLength("KOP", p.KOP),
		welltraj.CheckLength("target TVD", p.TargetTVD),
		welltraj.CheckLength("target H", p.TargetH),
		welltraj.CheckLength("horizontal length", p.HorizontalLength),
		welltraj.CheckInclination("first build inclination", p.FirstBuildInclination),
		welltraj.CheckBuildRate("build rate 1", p.BuildRate1),
		below("KOP", p.KOP, "target TVD", p.TargetTVD),
	)
}

// Is depth b strictly below depth a?
func below(aname string, a float64, bname string, b float64) error {
	if b <= a {
		tracer().Errorf("%s = %g is not below %s = %g", bname, b, aname, a)
		return fmt.Errorf("%w: %s %g must be below %s %g", welltraj.ErrInvalidParameter, bname, b, aname, a)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
