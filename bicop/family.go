// Package bicop implements the bivariate pair-copula contract: the
// family catalog and its per-family engines (pdf, cdf, h-functions,
// parameter/tau conversion), and the Bicop facade that adds rotation,
// fitting, family selection, and serialization on top. It is the
// building block internal/dissmann and vinecop compose into vines.
package bicop

import "fmt"

// Family is the closed catalog of bivariate copula families.
type Family int

const (
	Indep Family = iota
	Gaussian
	Student
	Clayton
	Gumbel
	Frank
	Joe
	BB1
	BB6
	BB7
	BB8
	Kernel
)

var familyNames = map[Family]string{
	Indep:    "indep",
	Gaussian: "gaussian",
	Student:  "student",
	Clayton:  "clayton",
	Gumbel:   "gumbel",
	Frank:    "frank",
	Joe:      "joe",
	BB1:      "bb1",
	BB6:      "bb6",
	BB7:      "bb7",
	BB8:      "bb8",
	Kernel:   "kernel",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily maps a family name (as used in controls and CLI flags) to
// its Family value.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown family %q", errUnknownFamily, s)
}

// AllFamilies is every family in the catalog, in a stable order.
func AllFamilies() []Family {
	return []Family{Indep, Gaussian, Student, Clayton, Gumbel, Frank, Joe, BB1, BB6, BB7, BB8, Kernel}
}

// ParametricFamilies excludes Kernel.
func ParametricFamilies() []Family {
	out := make([]Family, 0, len(familyNames)-1)
	for _, f := range AllFamilies() {
		if f != Kernel {
			out = append(out, f)
		}
	}
	return out
}

// IsParametric reports whether f has a closed-form parametric density.
func (f Family) IsParametric() bool { return f != Kernel }

// IsOneParameter reports whether f's density takes a single parameter.
func (f Family) IsOneParameter() bool {
	switch f {
	case Gaussian, Clayton, Gumbel, Frank, Joe:
		return true
	default:
		return false
	}
}

// IsTwoParameter reports whether f's density takes two parameters.
func (f Family) IsTwoParameter() bool {
	switch f {
	case Student, BB1, BB6, BB7, BB8:
		return true
	default:
		return false
	}
}

// IsElliptical reports whether f is Gaussian or Student.
func (f Family) IsElliptical() bool {
	return f == Gaussian || f == Student
}

// IsArchimedean reports whether f belongs to the Archimedean class.
func (f Family) IsArchimedean() bool {
	switch f {
	case Clayton, Gumbel, Frank, Joe, BB1, BB6, BB7, BB8:
		return true
	default:
		return false
	}
}

// IsBB reports whether f is a two-parameter Archimedean "BB" family.
func (f Family) IsBB() bool {
	switch f {
	case BB1, BB6, BB7, BB8:
		return true
	default:
		return false
	}
}

// IsRotationless reports whether f must always be used at rotation 0
// (no tail asymmetry to flip): independence, the elliptical families,
// Frank, and the nonparametric kernel family.
func (f Family) IsRotationless() bool {
	switch f {
	case Indep, Gaussian, Student, Frank, Kernel:
		return true
	default:
		return false
	}
}

// FlipByRotation reports whether flipping f is realized as swapping
// rotation 90 <-> 270 rather than re-parameterizing the engine. This
// holds for every asymmetric family: the 90/270 rotations of an
// Archimedean generator are themselves mirror images of one another.
func (f Family) FlipByRotation() bool {
	return !f.IsRotationless()
}

// ItauAdmissible reports whether f supports tau_to_parameters, used to
// restrict the itau fitting method and to seed MLE starting values.
func (f Family) ItauAdmissible() bool {
	return f != Kernel
}
