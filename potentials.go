package emc2lt

import (
	"fmt"

	"github.com/rmera/emc2lt/prm"
)

// Form is a functional form for a bonded potential. Only a few forms are
// known, everything else is FormUnsupported, which requires manual units.
type Form int

const (
	FormUnsupported Form = iota
	FormHarmonic
	FormCosineSquared
	FormSDK
)

// ParseForm returns the Form for a LAMMPS style name. The empty
// style is taken to be harmonic, the default.
func ParseForm(style string) Form {
	switch style {
	case "", "harmonic":
		return FormHarmonic
	case "cosine/squared":
		return FormCosineSquared
	case "sdk":
		return FormSDK
	}
	return FormUnsupported
}

func (f Form) String() string {
	switch f {
	case FormHarmonic:
		return "harmonic"
	case FormCosineSquared:
		return "cosine/squared"
	case FormSDK:
		return "sdk"
	}
	return "unsupported"
}

// Factors contains every conversion factor needed to write the force field.
// It is computed once and not modified afterwards.
type Factors struct {
	Units
	Bond     float64 //bond force constants
	Angle    float64 //angle force constants
	Dihedral float64
	Improper float64
	Manual   bool
}

// manualFactors are the factors used when the user asks for manual units.
func manualFactors() Factors {
	return Factors{Units: NoConversion, Bond: 1, Angle: 1, Dihedral: 1, Improper: 1, Manual: true}
}

func unsupported(kind, style string) error {
	return newCError(UnsupportedForm, "ResolveFactors", fmt.Sprintf("%s style %q", kind, style))
}

// ResolveFactors determines the conversion factors for the force constants of each
// kind of bonded term, given the unit factors and the styles to be used.
// Only kinds present in the force field are checked. The factors for absent kinds
// are left at 1. With manual units, every factor is 1.
//
// EMC bond and angle energies are k(x-x0)^2 while LAMMPS harmonic terms
// include the 1/2, hence the bond factor E/(2L^2).
func ResolveFactors(u Units, s Styles, p prm.Presence, manual bool) (Factors, error) {
	if manual {
		return manualFactors(), nil
	}
	f := Factors{Units: u, Bond: 1, Angle: 1, Dihedral: 1, Improper: 1}
	switch ParseForm(s.Bond) {
	case FormHarmonic:
		f.Bond = u.Energy / (2 * u.Length * u.Length)
	default:
		return f, unsupported("bond", s.Bond)
	}
	if p.Angle {
		switch ParseForm(s.Angle) {
		case FormHarmonic, FormSDK:
			f.Angle = u.Energy
		case FormCosineSquared:
			f.Angle = u.Energy / 2
		default:
			return f, unsupported("angle", s.Angle)
		}
	}
	//torsions and impropers are not fully implemented.
	if p.Torsion {
		if ParseForm(s.Dihedral) != FormHarmonic {
			return f, unsupported("dihedral", s.Dihedral)
		}
		f.Dihedral = u.Energy
	}
	if p.Improper {
		if ParseForm(s.Improper) != FormHarmonic {
			return f, unsupported("improper", s.Improper)
		}
		f.Improper = u.Energy
	}
	return f, nil
}
